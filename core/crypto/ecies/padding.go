package ecies

import (
	"crypto/subtle"
)

// pkcs7Pad returns a new slice holding b followed by 1..blockSize bytes, each
// equal to the pad length. The result never aliases b, so callers may encrypt
// it in place.
func pkcs7Pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize
	out := make([]byte, len(b)+n)
	copy(out, b)
	for i := len(b); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

// pkcs7Unpad strips PKCS#7 padding. The last blockSize bytes are always
// inspected so the running time does not depend on the pad length.
func pkcs7Unpad(b []byte, blockSize int) ([]byte, error) {
	if len(b) == 0 || len(b)%blockSize != 0 {
		return nil, ErrPadding.WithCausef("padded length %d is not a positive multiple of %d", len(b), blockSize)
	}

	n := int(b[len(b)-1])
	good := subtle.ConstantTimeLessOrEq(1, n) & subtle.ConstantTimeLessOrEq(n, blockSize)
	for i := 0; i < blockSize; i++ {
		inPad := subtle.ConstantTimeLessOrEq(i+1, n)
		match := subtle.ConstantTimeByteEq(b[len(b)-1-i], byte(n))
		good &= (inPad ^ 1) | match
	}
	if good != 1 {
		return nil, ErrPadding
	}
	return b[:len(b)-n], nil
}
