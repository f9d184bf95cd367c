package batch

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kochabx/ecies/core/crypto/ecies"
	"github.com/kochabx/ecies/errors"
)

func newKeys(t *testing.T) (pubHex, privHex string) {
	t.Helper()
	priv, err := ecies.Curve().GenerateKeyPair(nil)
	require.NoError(t, err)
	return priv.Public().Hex(true), priv.Hex()
}

func newBatch(t *testing.T, opts ...Option) *Batch {
	t.Helper()
	b, err := New(ecies.NewService(), opts...)
	require.NoError(t, err)
	t.Cleanup(b.Release)
	return b
}

func TestNew(t *testing.T) {
	b := newBatch(t)
	assert.Equal(t, defaultConcurrency, b.Concurrency())

	b = newBatch(t, WithConcurrency(9), WithLogger(nil))
	assert.Equal(t, 9, b.Concurrency())

	_, err := New(nil)
	assert.True(t, errors.Is(err, ErrNilService))
}

func TestRoundTripPreservesOrder(t *testing.T) {
	pubHex, privHex := newKeys(t)
	b := newBatch(t, WithConcurrency(3))

	plaintexts := make([][]byte, 40)
	for i := range plaintexts {
		plaintexts[i] = fmt.Appendf(nil, "message number %d", i)
	}

	envelopes, err := b.EncryptAll(context.Background(), plaintexts, pubHex)
	require.NoError(t, err)
	require.Len(t, envelopes, len(plaintexts))

	decrypted, err := b.DecryptAll(context.Background(), envelopes, privHex)
	require.NoError(t, err)
	assert.Equal(t, plaintexts, decrypted)
}

func TestEmptyInput(t *testing.T) {
	pubHex, privHex := newKeys(t)
	b := newBatch(t)

	envelopes, err := b.EncryptAll(context.Background(), nil, pubHex)
	require.NoError(t, err)
	assert.Empty(t, envelopes)

	plaintexts, err := b.DecryptAll(context.Background(), nil, privHex)
	require.NoError(t, err)
	assert.Empty(t, plaintexts)
}

func TestInvalidKeys(t *testing.T) {
	b := newBatch(t)

	_, err := b.EncryptAll(context.Background(), [][]byte{[]byte("x")}, "02"+"00")
	assert.True(t, errors.Is(err, ecies.ErrInvalidPublicKey))

	_, err = b.EncryptAll(context.Background(), [][]byte{[]byte("x")}, "zz")
	assert.True(t, errors.Is(err, ecies.ErrDecoding))

	_, err = b.DecryptAll(context.Background(), nil, "00")
	assert.True(t, errors.Is(err, ecies.ErrInvalidPrivateKey))
}

func TestItemErrorCarriesIndex(t *testing.T) {
	pubHex, privHex := newKeys(t)
	b := newBatch(t, WithConcurrency(2))

	plaintexts := [][]byte{[]byte("a"), []byte("b"), []byte("c"), []byte("d"), []byte("e")}
	envelopes, err := b.EncryptAll(context.Background(), plaintexts, pubHex)
	require.NoError(t, err)

	tampered := *envelopes[3]
	tampered.MAC = flipHex(tampered.MAC)
	envelopes[3] = &tampered

	out, err := b.DecryptAll(context.Background(), envelopes, privHex)
	assert.Nil(t, out)

	var itemErr *ItemError
	require.ErrorAs(t, err, &itemErr)
	assert.Equal(t, 3, itemErr.Index)
	assert.True(t, errors.Is(err, ecies.ErrMacMismatch))
	assert.Equal(t, 3, errors.ExitCode(err))
	assert.Contains(t, err.Error(), "item 3")
}

func TestNilEnvelopeItem(t *testing.T) {
	_, privHex := newKeys(t)
	b := newBatch(t)

	_, err := b.DecryptAll(context.Background(), []*ecies.Envelope{nil}, privHex)
	var itemErr *ItemError
	require.ErrorAs(t, err, &itemErr)
	assert.Equal(t, 0, itemErr.Index)
	assert.True(t, errors.Is(err, ecies.ErrDecoding))
}

func TestCanceledContext(t *testing.T) {
	pubHex, _ := newKeys(t)
	b := newBatch(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := b.EncryptAll(ctx, [][]byte{[]byte("a"), []byte("b")}, pubHex)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReleasedPool(t *testing.T) {
	pubHex, _ := newKeys(t)
	b, err := New(ecies.NewService())
	require.NoError(t, err)
	b.Release()

	_, err = b.EncryptAll(context.Background(), [][]byte{[]byte("a")}, pubHex)
	assert.True(t, errors.Is(err, ErrPoolClosed))
}

func TestPanicIsReported(t *testing.T) {
	b := newBatch(t)

	_, err := run(context.Background(), b, 3, func(i int) (int, error) {
		if i == 1 {
			panic("boom")
		}
		return i, nil
	})
	var itemErr *ItemError
	require.ErrorAs(t, err, &itemErr)
	assert.Equal(t, 1, itemErr.Index)
	assert.True(t, errors.Is(err, ErrPanic))
}

func flipHex(s string) string {
	b := []byte(s)
	if b[0] == '0' {
		b[0] = '1'
	} else {
		b[0] = '0'
	}
	return string(b)
}
