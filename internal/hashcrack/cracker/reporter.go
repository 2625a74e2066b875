package cracker

import "context"

type StartInfo struct {
	Algorithm string
	Hash      string
	Wordlist  string
}

// Reporter observes a scan. Implementations must not block for long and must
// handle their own failures: nothing they do affects the scan.
type Reporter interface {
	Start(ctx context.Context, info StartInfo)
	Progress(ctx context.Context, attempts uint64)
	Finish(ctx context.Context, outcome *Outcome)
}

type nopReporter struct{}

func (nopReporter) Start(context.Context, StartInfo) {}
func (nopReporter) Progress(context.Context, uint64) {}
func (nopReporter) Finish(context.Context, *Outcome) {}
