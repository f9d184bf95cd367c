// Package ecies implements the Elliptic Curve Integrated Encryption Scheme
// over secp256k1, compatible with the envelope used by Blockstack and its
// ports:
//   - ephemeral secp256k1 key pair per message
//   - ECDH, using the affine X coordinate as the shared secret
//   - SHA-512 of the 32-byte secret, split into an AES key and a MAC key
//   - AES-256-CBC with PKCS#7 padding
//   - HMAC-SHA256 over iv || ephemeral public key || ciphertext
//
// The result is an Envelope of four hex strings. Decryption verifies the MAC
// in constant time before any decryption is attempted.
//
// Example usage:
//
//	env, err := ecies.Encrypt([]byte("hello"), recipientPublicKeyHex)
//	if err != nil {
//	    return err
//	}
//
//	plaintext, err := ecies.Decrypt(env, recipientPrivateKeyHex)
//	if errors.Is(err, ecies.ErrMacMismatch) {
//	    // tampered or wrong key
//	}
package ecies
