package publisher

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type DeliveryMode uint8

const (
	Transient  DeliveryMode = 1
	Persistent DeliveryMode = 2
)

type Marshal func(any) ([]byte, error)

type Config struct {
	Exchange    string
	RoutingKey  string
	Marshal     Marshal
	ContentType string
}

// Sender is the publishing side of an AMQP channel.
type Sender interface {
	Publish(ctx context.Context, exchange string, key string, mandatory bool, immediate bool, msg amqp.Publishing) error
}

type Publisher[T any] interface {
	SendMessage(ctx context.Context, message *T, mode DeliveryMode, mandatory, immediate bool) error
}

type publisher[T any] struct {
	cfg    *Config
	sender Sender
	l      zerolog.Logger
}

func New[T any](sender Sender, config *Config) Publisher[T] {
	if config.Marshal == nil {
		config.Marshal = json.Marshal
	}
	if config.ContentType == "" {
		config.ContentType = "application/json"
	}
	return &publisher[T]{
		cfg:    config,
		sender: sender,
		l: log.With().
			Str("component", "amqp-publisher").
			Type("type", *new(T)).
			Str("exchange", config.Exchange).
			Str("routing-key", config.RoutingKey).
			Logger(),
	}
}

func (p *publisher[T]) SendMessage(ctx context.Context, message *T, mode DeliveryMode, mandatory, immediate bool) error {
	p.l.Debug().Msg("send message")
	body, err := p.cfg.Marshal(message)
	if err != nil {
		p.l.Error().Err(err).Msg("failed to marshal message")
		return errors.Wrap(err, "failed to marshal message")
	}
	msg := amqp.Publishing{
		DeliveryMode: uint8(mode),
		ContentType:  p.cfg.ContentType,
		Body:         body,
	}
	if err = p.sender.Publish(ctx, p.cfg.Exchange, p.cfg.RoutingKey, mandatory, immediate, msg); err != nil {
		p.l.Error().Err(err).Msg("failed to send message")
		return errors.Wrap(err, "failed to send message")
	}
	return nil
}
