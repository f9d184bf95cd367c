package ecies

import (
	"crypto/rand"
	"io"
	"math/big"
	"sync"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// CurveContext exposes the secp256k1 domain parameters together with point
// encoding and scalar generation. It is immutable after construction and safe
// for concurrent use.
type CurveContext struct {
	params    *secp256k1.CurveParams
	generator *PublicKey
}

var curve = sync.OnceValue(func() *CurveContext {
	var one secp256k1.ModNScalar
	one.SetInt(1)
	return &CurveContext{
		params:    secp256k1.Params(),
		generator: &PublicKey{key: secp256k1.NewPrivateKey(&one).PubKey()},
	}
})

// Curve returns the process-wide secp256k1 context.
func Curve() *CurveContext {
	return curve()
}

// Name returns the curve name.
func (c *CurveContext) Name() string {
	return "secp256k1"
}

// P returns a copy of the field prime.
func (c *CurveContext) P() *big.Int {
	return new(big.Int).Set(c.params.P)
}

// N returns a copy of the group order.
func (c *CurveContext) N() *big.Int {
	return new(big.Int).Set(c.params.N)
}

// Cofactor returns the curve cofactor.
func (c *CurveContext) Cofactor() int {
	return c.params.H
}

// ByteSize returns the size of a serialized field element.
func (c *CurveContext) ByteSize() int {
	return c.params.ByteSize
}

// Generator returns the base point G.
func (c *CurveContext) Generator() *PublicKey {
	return c.generator
}

// DecodePoint parses a compressed (33 bytes) or uncompressed (65 bytes) SEC1
// point. The point must lie on the curve.
func (c *CurveContext) DecodePoint(b []byte) (*PublicKey, error) {
	switch len(b) {
	case CompressedPublicKeyBytes:
		if b[0] != CompressedEvenTag && b[0] != CompressedOddTag {
			return nil, ErrInvalidPublicKey.WithCausef("unexpected prefix 0x%02x for compressed point", b[0])
		}
	case UncompressedPublicKeyBytes:
		if b[0] != UncompressedPointTag {
			return nil, ErrInvalidPublicKey.WithCausef("unexpected prefix 0x%02x for uncompressed point", b[0])
		}
	default:
		return nil, ErrInvalidPublicKey.WithCausef("point must be %d or %d bytes, got %d",
			CompressedPublicKeyBytes, UncompressedPublicKeyBytes, len(b))
	}

	key, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, ErrInvalidPublicKey.WithCause(err)
	}
	return &PublicKey{key: key}, nil
}

// EncodePoint returns the 33-byte compressed encoding of pub.
func (c *CurveContext) EncodePoint(pub *PublicKey) []byte {
	return pub.Bytes(true)
}

// GenerateScalar draws a uniformly random scalar in [1, N-1] from r by
// rejection sampling. A nil reader selects crypto/rand.
func (c *CurveContext) GenerateScalar(r io.Reader) (*secp256k1.ModNScalar, error) {
	if r == nil {
		r = rand.Reader
	}

	var buf [PrivateKeyBytes]byte
	defer clear(buf[:])

	scalar := new(secp256k1.ModNScalar)
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, ErrEncryptionFailed.WithCause(err)
		}
		if overflow := scalar.SetByteSlice(buf[:]); overflow || scalar.IsZero() {
			continue
		}
		return scalar, nil
	}
}

// GenerateKeyPair creates a fresh key pair. It is intended for ephemeral keys.
func (c *CurveContext) GenerateKeyPair(r io.Reader) (*PrivateKey, error) {
	scalar, err := c.GenerateScalar(r)
	if err != nil {
		return nil, err
	}
	return newPrivateKey(secp256k1.NewPrivateKey(scalar)), nil
}
