package ecies

import (
	"crypto/subtle"
	"encoding/hex"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/kochabx/ecies/core/crypto/ecies/internal"
)

// PrivateKey is a secp256k1 scalar in [1, N-1] and its public point.
type PrivateKey struct {
	publicKey *PublicKey
	key       *secp256k1.PrivateKey
}

func newPrivateKey(k *secp256k1.PrivateKey) *PrivateKey {
	return &PrivateKey{
		publicKey: &PublicKey{key: k.PubKey()},
		key:       k,
	}
}

// ParsePrivateKey decodes a big-endian scalar of at most 32 significant bytes.
func ParsePrivateKey(b []byte) (*PrivateKey, error) {
	// strip leading zeros so that sign-padded encodings are accepted
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	if len(b) > PrivateKeyBytes {
		return nil, ErrInvalidPrivateKey.WithCausef("scalar is %d bytes", len(b))
	}

	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(b); overflow {
		scalar.Zero()
		return nil, ErrInvalidPrivateKey.WithCausef("scalar is not below the group order")
	}
	if scalar.IsZero() {
		return nil, ErrInvalidPrivateKey.WithCausef("scalar is zero")
	}
	return newPrivateKey(secp256k1.NewPrivateKey(&scalar)), nil
}

// ParsePrivateKeyHex decodes a big-endian hex scalar. Odd-length input is
// read as if it carried a leading zero nibble.
func ParsePrivateKeyHex(s string) (*PrivateKey, error) {
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, ErrDecoding.WithMetadata(map[string]string{"field": "private_key"}).WithCause(err)
	}
	defer internal.Wipe(b)
	return ParsePrivateKey(b)
}

// ImportECDSA wraps a decred private key. The key is copied.
func ImportECDSA(k *secp256k1.PrivateKey) (*PrivateKey, error) {
	if k == nil || k.Key.IsZero() {
		return nil, ErrInvalidPrivateKey
	}
	scalar := k.Key
	return newPrivateKey(secp256k1.NewPrivateKey(&scalar)), nil
}

// Public returns the public key.
func (priv *PrivateKey) Public() *PublicKey {
	return priv.publicKey
}

// Bytes returns the 32-byte big-endian scalar, or nil once destroyed.
func (priv *PrivateKey) Bytes() []byte {
	if priv.key == nil {
		return nil
	}
	return priv.key.Serialize()
}

// Hex returns the hex encoded scalar.
func (priv *PrivateKey) Hex() string {
	return hex.EncodeToString(priv.Bytes())
}

// ECDH computes the shared secret with pub. See Agree.
func (priv *PrivateKey) ECDH(pub *PublicKey) ([]byte, error) {
	secret, err := Agree(priv, pub)
	if err != nil {
		return nil, err
	}
	return internal.ZeroPad(secret.Bytes(), CurvePointSize), nil
}

// Equals compares two private keys in constant time.
func (priv *PrivateKey) Equals(other *PrivateKey) bool {
	if priv == nil || other == nil || priv.key == nil || other.key == nil {
		return false
	}
	a, b := priv.key.Key.Bytes(), other.key.Key.Bytes()
	defer clear(a[:])
	defer clear(b[:])
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}

// Destroy zeroes the scalar. The key must not be used afterwards.
func (priv *PrivateKey) Destroy() {
	if priv == nil || priv.key == nil {
		return
	}
	priv.key.Zero()
	priv.key = nil
}
