package ecies

import (
	"github.com/kochabx/ecies/core/crypto/hmac"
)

// ComputeMAC tags iv || ephemeralPublicKey || ciphertext with HMAC-SHA256.
func ComputeMAC(macKey, iv, ephemeralPublicKey, ciphertext []byte) []byte {
	return hmac.Sum(macKey, iv, ephemeralPublicKey, ciphertext)
}

// VerifyMAC recomputes the tag and compares it with expected in constant time.
func VerifyMAC(macKey, expected, iv, ephemeralPublicKey, ciphertext []byte) bool {
	return hmac.Verify(macKey, expected, iv, ephemeralPublicKey, ciphertext)
}
