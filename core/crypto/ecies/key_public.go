package ecies

import (
	"crypto/subtle"
	"encoding/hex"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// PublicKey is a point on secp256k1.
type PublicKey struct {
	key *secp256k1.PublicKey
}

// ParsePublicKey decodes a compressed or uncompressed SEC1 point.
func ParsePublicKey(b []byte) (*PublicKey, error) {
	return Curve().DecodePoint(b)
}

// ParsePublicKeyHex decodes a hex encoded SEC1 point.
func ParsePublicKeyHex(s string) (*PublicKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, ErrDecoding.WithMetadata(map[string]string{"field": "public_key"}).WithCause(err)
	}
	return ParsePublicKey(b)
}

// ImportECDSAPublic wraps a decred public key.
func ImportECDSAPublic(k *secp256k1.PublicKey) (*PublicKey, error) {
	if k == nil || !k.IsOnCurve() {
		return nil, ErrInvalidPublicKey
	}
	return &PublicKey{key: k}, nil
}

// Bytes returns the SEC1 encoding of the key.
func (pub *PublicKey) Bytes(compressed bool) []byte {
	if compressed {
		return pub.key.SerializeCompressed()
	}
	return pub.key.SerializeUncompressed()
}

// Hex returns the hex encoded SEC1 form of the key.
func (pub *PublicKey) Hex(compressed bool) string {
	return hex.EncodeToString(pub.Bytes(compressed))
}

// Equals reports whether both keys encode the same point.
func (pub *PublicKey) Equals(other *PublicKey) bool {
	if pub == nil || other == nil {
		return pub == other
	}
	return subtle.ConstantTimeCompare(pub.Bytes(false), other.Bytes(false)) == 1
}
