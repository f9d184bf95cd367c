package ecies

import (
	"crypto/aes"
	"crypto/sha256"
)

// secp256k1 encoding sizes
const (
	// CurvePointSize is the size in bytes of a field element or scalar
	CurvePointSize = 32

	// Point encoding prefixes
	UncompressedPointTag = 0x04 // 0x04 || X || Y
	CompressedEvenTag    = 0x02 // Y is even
	CompressedOddTag     = 0x03 // Y is odd

	// CompressedPublicKeyBytes is the wire size of an ephemeral public key
	CompressedPublicKeyBytes = 1 + CurvePointSize // 33 bytes

	// UncompressedPublicKeyBytes is accepted on input only
	UncompressedPublicKeyBytes = 1 + 2*CurvePointSize // 65 bytes

	// PrivateKeyBytes is the size of a serialized scalar
	PrivateKeyBytes = CurvePointSize
)

// Symmetric parameters
const (
	// AESKeySize selects AES-256
	AESKeySize = 32

	// MACKeySize is the size of the HMAC-SHA256 key taken from the KDF output
	MACKeySize = 32

	// IVSize is the CBC initialization vector size
	IVSize = aes.BlockSize

	// MACSize is the size of an HMAC-SHA256 tag
	MACSize = sha256.Size
)

// Operation names reported to an Observer
const (
	OpEncrypt = "encrypt"
	OpDecrypt = "decrypt"
)
