package amqp

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	conn "github.com/ykhdr/crack-hash/common/amqp/connection"
)

const defaultDialTimeout = 5 * time.Second

func Dial(ctx context.Context, cfg *Config) (*conn.Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}
	opts := amqp.Config{
		SASL: []amqp.Authentication{
			&amqp.PlainAuth{
				Username: cfg.Username,
				Password: cfg.Password,
			},
		},
		Dial: amqp.DefaultDial(timeout),
	}
	return conn.NewConnection(cfg.URI, opts)
}
