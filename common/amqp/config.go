package amqp

import (
	"time"

	"github.com/ykhdr/crack-hash/common/amqp/publisher"
)

type Config struct {
	URI             string           `kdl:"uri"`
	Username        string           `kdl:"username"`
	Password        string           `kdl:"password"`
	DialTimeout     time.Duration    `kdl:"dial-timeout"`
	PublisherConfig *PublisherConfig `kdl:"publisher"`
}

type PublisherConfig struct {
	Exchange   string `kdl:"exchange"`
	RoutingKey string `kdl:"routing-key"`
}

func (p *PublisherConfig) ToPublisherConfig(
	marshal publisher.Marshal,
	contentType string,
) *publisher.Config {
	return &publisher.Config{
		Exchange:    p.Exchange,
		RoutingKey:  p.RoutingKey,
		Marshal:     marshal,
		ContentType: contentType,
	}
}
