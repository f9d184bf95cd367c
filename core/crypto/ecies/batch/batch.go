// Package batch runs many ECIES operations against one key on a bounded
// goroutine pool.
package batch

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/kochabx/ecies/core/crypto/ecies"
	"github.com/kochabx/ecies/errors"
	"github.com/kochabx/ecies/log"
)

var (
	ErrNilService = errors.Internal("batch: service is nil")
	ErrPoolClosed = errors.Internal("batch: pool is closed")
	ErrPanic      = errors.Internal("batch: item panicked")
)

// ItemError ties a failure to the position of the input that caused it.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// Batch fans Encrypt and Decrypt calls out over an ants pool. Results keep
// the order of the inputs.
type Batch struct {
	svc         *ecies.Service
	pool        *ants.Pool
	logger      *log.Logger
	concurrency int
}

// New creates a Batch around svc.
func New(svc *ecies.Service, opts ...Option) (*Batch, error) {
	if svc == nil {
		return nil, ErrNilService
	}

	b := &Batch{
		svc:         svc,
		logger:      log.Nop(),
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(b)
	}

	pool, err := ants.NewPool(b.concurrency,
		ants.WithPreAlloc(true),
		ants.WithLogger(&b.logger.Logger),
	)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "batch: create pool")
	}
	b.pool = pool

	return b, nil
}

// Concurrency returns the pool size.
func (b *Batch) Concurrency() int {
	return b.pool.Cap()
}

// Release stops the pool workers.
func (b *Batch) Release() {
	b.pool.Release()
}

// EncryptAll encrypts every plaintext for one recipient.
func (b *Batch) EncryptAll(ctx context.Context, plaintexts [][]byte, recipientPublicKeyHex string) ([]*ecies.Envelope, error) {
	recipient, err := ecies.ParsePublicKeyHex(recipientPublicKeyHex)
	if err != nil {
		return nil, err
	}

	return run(ctx, b, len(plaintexts), func(i int) (*ecies.Envelope, error) {
		return b.svc.EncryptTo(recipient, plaintexts[i])
	})
}

// DecryptAll decrypts every envelope with one private key. The parsed key is
// destroyed before returning.
func (b *Batch) DecryptAll(ctx context.Context, envelopes []*ecies.Envelope, recipientPrivateKeyHex string) ([][]byte, error) {
	priv, err := ecies.ParsePrivateKeyHex(recipientPrivateKeyHex)
	if err != nil {
		return nil, err
	}
	defer priv.Destroy()

	return run(ctx, b, len(envelopes), func(i int) ([]byte, error) {
		return b.svc.DecryptWith(priv, envelopes[i])
	})
}

// run submits n tasks and waits for all of them. The first failure cancels
// tasks that have not started yet.
func run[T any](parent context.Context, b *Batch, n int, fn func(i int) (T, error)) ([]T, error) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var (
		wg    sync.WaitGroup
		once  sync.Once
		first error
	)
	fail := func(err error) {
		once.Do(func() {
			first = err
			cancel()
		})
	}

	out := make([]T, n)
	for i := range n {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		err := b.pool.Submit(func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					fail(&ItemError{Index: i, Err: ErrPanic.WithCausef("%v", r)})
				}
			}()

			if ctx.Err() != nil {
				return
			}
			v, err := fn(i)
			if err != nil {
				fail(&ItemError{Index: i, Err: err})
				return
			}
			out[i] = v
		})
		if err != nil {
			wg.Done()
			fail(ErrPoolClosed.WithCause(err))
			break
		}
	}
	wg.Wait()

	if first != nil {
		b.logger.Debug().Err(first).Int("items", n).Msg("batch aborted")
		return nil, first
	}
	if err := parent.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
