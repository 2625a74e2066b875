package cracker

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

var EmptyWordlistErr = errors.New("wordlist contains no usable candidates")

type Status int

const (
	StatusFound Status = iota + 1
	StatusExhausted
	StatusEmptyInput
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusExhausted:
		return "exhausted"
	case StatusEmptyInput:
		return "empty-input"
	default:
		return "unknown"
	}
}

// Stats is a snapshot of the scan counters taken when the outcome was built.
type Stats struct {
	Attempts  uint64
	StartedAt time.Time
	Elapsed   time.Duration
}

// Rate is attempts per second, or 0 when no time has elapsed.
func (s Stats) Rate() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Attempts) / s.Elapsed.Seconds()
}

// Outcome is the immutable result of one scan.
type Outcome struct {
	status   Status
	password string
	stats    Stats
}

func (o *Outcome) Status() Status {
	return o.status
}

// Password is the recovered candidate. It is only meaningful when Found is
// true, since the empty string is itself a valid candidate.
func (o *Outcome) Password() string {
	return o.password
}

func (o *Outcome) Found() bool {
	return o.status == StatusFound
}

func (o *Outcome) Stats() Stats {
	return o.stats
}

// Err returns EmptyWordlistErr for StatusEmptyInput and nil otherwise.
// Exhausted is a normal negative result, not an error.
func (o *Outcome) Err() error {
	if o.status == StatusEmptyInput {
		return EmptyWordlistErr
	}
	return nil
}

// ScanError is a read failure after the wordlist was opened. It carries the
// counters accumulated up to the failure.
type ScanError struct {
	Path  string
	Stats Stats
	Err   error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan %s failed after %d attempts: %v", e.Path, e.Stats.Attempts, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}
