package batch

import "github.com/kochabx/ecies/log"

const defaultConcurrency = 4

// Option configures a Batch.
type Option func(*Batch)

// WithConcurrency bounds the number of items processed at once.
func WithConcurrency(n int) Option {
	return func(b *Batch) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// WithLogger sets the logger used for pool diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(b *Batch) {
		if l != nil {
			b.logger = l
		}
	}
}
