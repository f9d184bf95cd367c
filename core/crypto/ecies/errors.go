package ecies

import (
	"github.com/kochabx/ecies/errors"
)

// Input errors
var (
	// ErrInvalidPublicKey indicates bytes that do not encode a point on secp256k1
	ErrInvalidPublicKey = errors.BadRequest("ecies: invalid public key")

	// ErrInvalidPrivateKey indicates a scalar outside [1, N-1] or unparsable hex
	ErrInvalidPrivateKey = errors.BadRequest("ecies: invalid private key")

	// ErrDecoding indicates malformed hex or a malformed envelope
	ErrDecoding = errors.BadRequest("ecies: decoding error")
)

// Authentication errors
var (
	// ErrMacMismatch indicates the envelope failed authentication. No
	// decryption is attempted when this is returned.
	ErrMacMismatch = errors.Unauthorized("ecies: mac mismatch")
)

// Internal errors
var (
	// ErrPadding indicates malformed block padding after a verified MAC
	ErrPadding = errors.Internal("ecies: invalid padding")

	// ErrEncryptionFailed indicates a randomness or cipher setup failure
	ErrEncryptionFailed = errors.Internal("ecies: encryption failed")

	// ErrKeyDerivationFailed indicates a shared secret that cannot be serialized
	ErrKeyDerivationFailed = errors.Internal("ecies: key derivation failed")
)

// Kind classifies err into a short label suitable for metrics.
func Kind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidPublicKey):
		return "invalid_public_key"
	case errors.Is(err, ErrInvalidPrivateKey):
		return "invalid_private_key"
	case errors.Is(err, ErrDecoding):
		return "decoding_error"
	case errors.Is(err, ErrMacMismatch):
		return "mac_mismatch"
	case errors.Is(err, ErrPadding):
		return "padding_error"
	case errors.Is(err, ErrEncryptionFailed):
		return "encryption_failed"
	case errors.Is(err, ErrKeyDerivationFailed):
		return "key_derivation_failed"
	default:
		return "unknown"
	}
}
