package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/ykhdr/crack-hash/common/amqp/publisher"
	"github.com/ykhdr/crack-hash/internal/hashcrack/cracker"
	"github.com/ykhdr/crack-hash/pkg/messages"
)

// AmqpReporter publishes every notification of a scan as a CrackEvent.
// Publish failures are logged and dropped.
type AmqpReporter struct {
	l      zerolog.Logger
	pub    publisher.Publisher[messages.CrackEvent]
	now    func() time.Time
	scanId string
}

func NewAmqpReporter(pub publisher.Publisher[messages.CrackEvent]) *AmqpReporter {
	return &AmqpReporter{
		pub: pub,
		now: time.Now,
		l: log.With().
			Str("domain", "report").
			Str("type", "amqp").
			Logger(),
	}
}

func (r *AmqpReporter) Start(ctx context.Context, info cracker.StartInfo) {
	r.scanId = uuid.NewString()
	r.send(ctx, &messages.CrackEvent{
		Kind:      messages.EventStart,
		Algorithm: info.Algorithm,
		Hash:      info.Hash,
	})
}

func (r *AmqpReporter) Progress(ctx context.Context, attempts uint64) {
	r.send(ctx, &messages.CrackEvent{
		Kind:     messages.EventProgress,
		Attempts: attempts,
	})
}

func (r *AmqpReporter) Finish(ctx context.Context, outcome *cracker.Outcome) {
	stats := outcome.Stats()
	r.send(ctx, &messages.CrackEvent{
		Kind:      messages.EventOutcome,
		Attempts:  stats.Attempts,
		Status:    outcomeStatus(outcome.Status()),
		Password:  outcome.Password(),
		ElapsedMs: stats.Elapsed.Milliseconds(),
	})
}

func (r *AmqpReporter) send(ctx context.Context, event *messages.CrackEvent) {
	event.Id = uuid.NewString()
	event.ScanId = r.scanId
	event.Timestamp = r.now().UTC()
	if err := r.pub.SendMessage(ctx, event, publisher.Persistent, false, false); err != nil {
		r.l.Warn().Err(err).Str("kind", string(event.Kind)).Msg("failed to publish crack event")
	}
}

func outcomeStatus(s cracker.Status) messages.OutcomeStatus {
	switch s {
	case cracker.StatusFound:
		return messages.StatusFound
	case cracker.StatusExhausted:
		return messages.StatusExhausted
	default:
		return messages.StatusEmptyInput
	}
}
