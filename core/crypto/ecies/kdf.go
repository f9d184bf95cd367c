package ecies

import (
	"crypto/sha512"
	"math/big"

	"github.com/kochabx/ecies/core/crypto/ecies/internal"
)

// SharedKeys holds the symmetric keys derived from one ECDH secret.
type SharedKeys struct {
	EncryptionKey []byte
	MACKey        []byte
}

// DeriveKeys serializes secret as exactly 32 big-endian bytes (left padded
// with zeros), hashes it with SHA-512 and splits the digest: the first half
// keys AES-256, the second half keys HMAC-SHA256.
func DeriveKeys(secret *big.Int) (*SharedKeys, error) {
	if secret == nil || secret.Sign() < 0 || secret.BitLen() > 8*CurvePointSize {
		return nil, ErrKeyDerivationFailed.WithCausef("secret does not fit in %d bytes", CurvePointSize)
	}

	var buf [CurvePointSize]byte
	secret.FillBytes(buf[:])
	digest := sha512.Sum512(buf[:])
	defer clear(buf[:])
	defer clear(digest[:])

	return &SharedKeys{
		EncryptionKey: internal.ZeroPad(digest[:AESKeySize], AESKeySize),
		MACKey:        internal.ZeroPad(digest[AESKeySize:], MACKeySize),
	}, nil
}

// Destroy zeroes both keys.
func (k *SharedKeys) Destroy() {
	if k == nil {
		return
	}
	internal.Wipe(k.EncryptionKey)
	internal.Wipe(k.MACKey)
}
