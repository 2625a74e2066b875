package config

import (
	"github.com/ykhdr/crack-hash/common/amqp"
	"github.com/ykhdr/crack-hash/common/config"
	"github.com/ykhdr/crack-hash/common/store/mongo"
	"github.com/ykhdr/crack-hash/internal/hashcrack/cracker"
)

// CrackerConfig configures a scan. Nil AmqpConfig or MongoConfig disables the
// corresponding reporter.
type CrackerConfig struct {
	config.LogConfig
	ProgressInterval uint64        `kdl:"progress-interval"`
	AmqpConfig       *amqp.Config  `kdl:"amqp"`
	MongoConfig      *mongo.Config `kdl:"mongo"`
}

func DefaultConfig() *CrackerConfig {
	return &CrackerConfig{
		LogConfig:        config.LogConfig{LogLevel: "info"},
		ProgressInterval: cracker.DefaultProgressInterval,
	}
}

func InitializeConfig(path string) (*CrackerConfig, error) {
	return config.InitializeConfig[CrackerConfig](path, *DefaultConfig())
}
