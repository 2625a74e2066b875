package connection

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	ConnAlreadyClosedErr    = errors.New("connection is already closed")
	ChannelAlreadyClosedErr = errors.New("channel is already closed")
)

// Connection owns a single AMQP connection for the lifetime of one scan.
// A scan is short-lived, so a dropped connection is not re-dialed; publishes
// after that fail and are reported by the caller.
type Connection struct {
	l      zerolog.Logger
	uri    string
	conn   *amqp.Connection
	closed atomic.Bool
}

type Channel struct {
	l      zerolog.Logger
	ch     *amqp.Channel
	closed atomic.Bool
}

func NewConnection(uri string, opts amqp.Config) (*Connection, error) {
	c, err := amqp.DialConfig(uri, opts)
	if err != nil {
		return nil, errors.Wrap(err, "error dial amqp connection")
	}
	conn := &Connection{
		uri:  uri,
		conn: c,
		l:    log.With().Str("component", "amqp-connection").Logger(),
	}
	conn.l.Debug().Msg("amqp connection established")
	return conn, nil
}

func (c *Connection) Close() error {
	if c.closed.Swap(true) {
		return ConnAlreadyClosedErr
	}
	if err := c.conn.Close(); err != nil {
		return errors.Wrap(err, "error close amqp connection")
	}
	c.l.Debug().Msg("amqp connection closed")
	return nil
}

func (c *Connection) Channel() (*Channel, error) {
	if c.closed.Load() {
		return nil, ConnAlreadyClosedErr
	}
	amqpCh, err := c.conn.Channel()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open channel")
	}
	return &Channel{
		ch: amqpCh,
		l:  log.With().Str("component", "amqp-channel").Logger(),
	}, nil
}

func (ch *Channel) Close() error {
	if ch.closed.Swap(true) {
		return ChannelAlreadyClosedErr
	}
	if err := ch.ch.Close(); err != nil {
		return errors.Wrap(err, "failed to close amqp channel")
	}
	return nil
}

func (ch *Channel) IsClosed() bool {
	return ch.closed.Load() || ch.ch.IsClosed()
}

func (ch *Channel) Publish(ctx context.Context, exchange string, key string, mandatory bool, immediate bool, msg amqp.Publishing) error {
	if ch.IsClosed() {
		return ChannelAlreadyClosedErr
	}
	if err := ch.ch.PublishWithContext(ctx, exchange, key, mandatory, immediate, msg); err != nil {
		return errors.Wrap(err, "failed to publish")
	}
	return nil
}
