package mongo

import "time"

type ClientConfig struct {
	URI            string        `kdl:"uri"`
	Username       string        `kdl:"username"`
	Password       string        `kdl:"password"`
	ConnectTimeout time.Duration `kdl:"connect-timeout"`
}

type Config struct {
	ClientConfig
	Database   string `kdl:"database"`
	Collection string `kdl:"collection"`
}
