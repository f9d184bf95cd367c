// Package hmac computes and verifies HMAC-SHA256 tags over a sequence of
// byte slices without concatenating them first.
package hmac

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Size is the length of a tag in bytes.
const Size = sha256.Size

// Sum returns HMAC-SHA256(key, parts[0] || parts[1] || ...).
func Sum(key []byte, parts ...[]byte) []byte {
	h := hmac.New(sha256.New, key)
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

// SumHex is Sum with a hex encoded result.
func SumHex(key []byte, parts ...[]byte) string {
	return hex.EncodeToString(Sum(key, parts...))
}

// Verify recomputes the tag and compares it with expected in constant time.
// A tag of the wrong length never verifies.
func Verify(key, expected []byte, parts ...[]byte) bool {
	if len(expected) != Size {
		return false
	}
	return hmac.Equal(Sum(key, parts...), expected)
}

// VerifyHex is Verify for a hex encoded tag. Malformed hex never verifies.
func VerifyHex(key []byte, expected string, parts ...[]byte) bool {
	tag, err := hex.DecodeString(expected)
	if err != nil {
		return false
	}
	return Verify(key, tag, parts...)
}
