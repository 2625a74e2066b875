// Package cracker runs a dictionary attack of one wordlist against one
// target digest.
package cracker

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/ykhdr/crack-hash/internal/hashcrack/digest"
	"github.com/ykhdr/crack-hash/internal/hashcrack/wordlist"
)

const DefaultProgressInterval uint64 = 10000

type Option func(*Cracker)

// WithProgressInterval sets how many attempts pass between progress
// notifications. Zero disables them.
func WithProgressInterval(n uint64) Option {
	return func(c *Cracker) {
		c.progressInterval = n
	}
}

func WithReporter(r Reporter) Option {
	return func(c *Cracker) {
		if r != nil {
			c.reporter = r
		}
	}
}

func withClock(now func() time.Time) Option {
	return func(c *Cracker) {
		c.now = now
	}
}

// Cracker holds no per-scan state and may be reused for sequential scans.
type Cracker struct {
	l                zerolog.Logger
	reporter         Reporter
	progressInterval uint64
	now              func() time.Time
}

func New(opts ...Option) *Cracker {
	c := &Cracker{
		reporter:         nopReporter{},
		progressInterval: DefaultProgressInterval,
		now:              time.Now,
		l: log.With().
			Str("domain", "hashcrack").
			Str("type", "cracker").
			Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Crack scans the wordlist at path for a candidate whose digest equals
// target, compared case-insensitively. The target is expected to be
// validated already. A missing file fails with *wordlist.FileNotFoundError
// before any notification; a read failure mid-scan yields *ScanError.
// ctx is only handed to the reporter; the scan itself is not cancellable.
func (c *Cracker) Crack(ctx context.Context, alg digest.Algorithm, target string, path string) (*Outcome, error) {
	src, err := wordlist.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := src.Close(); err != nil {
			c.l.Warn().Err(err).Msg("failed to close wordlist")
		}
	}()

	target = strings.ToLower(target)
	c.reporter.Start(ctx, StartInfo{Algorithm: alg.Name(), Hash: target, Wordlist: path})

	var attempts uint64
	start := c.now()
	snapshot := func() Stats {
		return Stats{Attempts: attempts, StartedAt: start, Elapsed: c.now().Sub(start)}
	}

	for src.Scan() {
		attempts++
		if c.progressInterval > 0 && attempts%c.progressInterval == 0 {
			c.reporter.Progress(ctx, attempts)
		}
		candidate := src.Candidate()
		if alg.DigestString(candidate) == target {
			c.l.Debug().Uint64("attempts", attempts).Msg("match found")
			return c.finish(ctx, &Outcome{status: StatusFound, password: candidate, stats: snapshot()}), nil
		}
	}
	if err = src.Err(); err != nil {
		return nil, &ScanError{Path: path, Stats: snapshot(), Err: err}
	}

	c.l.Debug().
		Uint64("attempts", attempts).
		Uint64("skipped", src.Skipped()).
		Msg("wordlist exhausted")
	if attempts == 0 {
		return c.finish(ctx, &Outcome{status: StatusEmptyInput, stats: snapshot()}), nil
	}
	return c.finish(ctx, &Outcome{status: StatusExhausted, stats: snapshot()}), nil
}

func (c *Cracker) finish(ctx context.Context, o *Outcome) *Outcome {
	c.reporter.Finish(ctx, o)
	return o
}
