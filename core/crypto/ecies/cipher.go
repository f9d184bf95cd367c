package ecies

import (
	"crypto/aes"
	"crypto/cipher"
)

// EncryptCBC pads plaintext with PKCS#7 and encrypts it with AES-256-CBC.
// An empty plaintext yields one full block of padding.
func EncryptCBC(plaintext, key, iv []byte) ([]byte, error) {
	if len(key) != AESKeySize {
		return nil, ErrEncryptionFailed.WithCausef("key must be %d bytes, got %d", AESKeySize, len(key))
	}
	if len(iv) != IVSize {
		return nil, ErrEncryptionFailed.WithCausef("iv must be %d bytes, got %d", IVSize, len(iv))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, ErrEncryptionFailed.WithCause(err)
	}

	out := pkcs7Pad(plaintext, aes.BlockSize)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, out)
	return out, nil
}

// DecryptCBC decrypts AES-256-CBC ciphertext and removes PKCS#7 padding.
// Shape problems yield ErrDecoding; bad padding yields ErrPadding.
func DecryptCBC(ciphertext, key, iv []byte) ([]byte, error) {
	if len(key) != AESKeySize {
		return nil, ErrDecoding.WithCausef("key must be %d bytes, got %d", AESKeySize, len(key))
	}
	if len(iv) != IVSize {
		return nil, ErrDecoding.WithCausef("iv must be %d bytes, got %d", IVSize, len(iv))
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, ErrDecoding.WithCausef("ciphertext length %d is not a positive multiple of %d", len(ciphertext), aes.BlockSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, ErrDecoding.WithCause(err)
	}

	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ciphertext)

	plaintext, err := pkcs7Unpad(out, aes.BlockSize)
	if err != nil {
		clear(out)
		return nil, err
	}
	return plaintext, nil
}
