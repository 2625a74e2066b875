package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/ykhdr/crack-hash/internal/hashcrack/cracker"
	"github.com/ykhdr/crack-hash/internal/store/outcomestore"
	"github.com/ykhdr/crack-hash/pkg/messages"
)

// StoreReporter archives the terminal outcome of each scan. Start and
// progress are not stored.
type StoreReporter struct {
	l     zerolog.Logger
	store outcomestore.OutcomeStore
	now   func() time.Time
	start cracker.StartInfo
	id    string
}

func NewStoreReporter(store outcomestore.OutcomeStore) *StoreReporter {
	return &StoreReporter{
		store: store,
		now:   time.Now,
		l: log.With().
			Str("domain", "report").
			Str("type", "store").
			Logger(),
	}
}

func (r *StoreReporter) Start(_ context.Context, info cracker.StartInfo) {
	r.start = info
	r.id = uuid.NewString()
}

func (r *StoreReporter) Progress(context.Context, uint64) {}

func (r *StoreReporter) Finish(ctx context.Context, outcome *cracker.Outcome) {
	record := r.record(outcome)
	if err := r.store.Save(ctx, record); err != nil {
		r.l.Warn().Err(err).Str("scan-id", record.ScanId).Msg("failed to archive outcome")
		return
	}
	r.l.Debug().Str("id", record.Id).Msg("outcome archived")
}

func (r *StoreReporter) record(outcome *cracker.Outcome) *messages.CrackOutcome {
	stats := outcome.Stats()
	rec := &messages.CrackOutcome{
		Id:         uuid.NewString(),
		ScanId:     r.id,
		Algorithm:  r.start.Algorithm,
		Hash:       r.start.Hash,
		Wordlist:   r.start.Wordlist,
		Status:     outcomeStatus(outcome.Status()),
		Attempts:   stats.Attempts,
		ElapsedMs:  stats.Elapsed.Milliseconds(),
		StartedAt:  stats.StartedAt.UTC(),
		FinishedAt: r.now().UTC(),
	}
	if outcome.Found() {
		rec.Password = outcome.Password()
	}
	return rec
}
