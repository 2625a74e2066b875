// Package report holds the cracker.Reporter implementations: console
// rendering, AMQP events and the outcome archive.
package report

import (
	"context"

	"github.com/ykhdr/crack-hash/internal/hashcrack/cracker"
)

// Multi forwards each notification to every reporter in order.
type Multi []cracker.Reporter

func (m Multi) Start(ctx context.Context, info cracker.StartInfo) {
	for _, r := range m {
		r.Start(ctx, info)
	}
}

func (m Multi) Progress(ctx context.Context, attempts uint64) {
	for _, r := range m {
		r.Progress(ctx, attempts)
	}
}

func (m Multi) Finish(ctx context.Context, outcome *cracker.Outcome) {
	for _, r := range m {
		r.Finish(ctx, outcome)
	}
}
