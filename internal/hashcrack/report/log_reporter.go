package report

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/ykhdr/crack-hash/internal/hashcrack/cracker"
)

// LogReporter renders the scan to a zerolog logger, usually a console writer
// on stdout. It only formats; counts and timings come from the cracker as is.
type LogReporter struct {
	l zerolog.Logger
}

func NewLogReporter(l zerolog.Logger) *LogReporter {
	return &LogReporter{l: l}
}

func (r *LogReporter) Start(_ context.Context, info cracker.StartInfo) {
	r.l.Info().
		Str("algorithm", info.Algorithm).
		Str("target", info.Hash).
		Str("wordlist", info.Wordlist).
		Msg("starting hash cracking")
}

func (r *LogReporter) Progress(_ context.Context, attempts uint64) {
	r.l.Info().Uint64("attempts", attempts).Msgf("tried %d passwords", attempts)
}

func (r *LogReporter) Finish(_ context.Context, outcome *cracker.Outcome) {
	stats := outcome.Stats()
	var event *zerolog.Event
	switch outcome.Status() {
	case cracker.StatusFound:
		event = r.l.Info().Str("password", outcome.Password())
	case cracker.StatusExhausted:
		event = r.l.Warn().Str("hint", "try a different wordlist or check the hash")
	default:
		r.l.Error().Err(outcome.Err()).Msg("nothing to try")
		return
	}
	event.
		Uint64("attempts", stats.Attempts).
		Str("elapsed", stats.Elapsed.Round(10*time.Microsecond).String()).
		Str("rate", formatRate(stats.Rate())).
		Msg(finishMessage(outcome.Status()))
}

func finishMessage(s cracker.Status) string {
	if s == cracker.StatusFound {
		return "password found"
	}
	return "password not found"
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', 0, 64) + " h/s"
}
