package ecies

import (
	"crypto/rand"
	"io"
	"time"

	"github.com/kochabx/ecies/log"
)

// Observer receives the outcome of every Encrypt and Decrypt call.
type Observer interface {
	Observe(op string, err error, elapsed time.Duration)
}

// Option configures a Service.
type Option func(*Service)

// WithRand sets the randomness source for ephemeral keys and IVs.
func WithRand(r io.Reader) Option {
	return func(s *Service) {
		if r != nil {
			s.rand = r
		}
	}
}

// WithLogger sets the logger. The service only logs at debug level and never
// logs key material.
func WithLogger(l *log.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithObserver registers an Observer.
func WithObserver(o Observer) Option {
	return func(s *Service) {
		s.observer = o
	}
}

// Service encrypts to and decrypts from hex envelopes. It holds no per-call
// state and is safe for concurrent use.
type Service struct {
	rand     io.Reader
	logger   *log.Logger
	observer Observer
}

// NewService creates a Service. By default it draws randomness from
// crypto/rand and discards logs.
func NewService(opts ...Option) *Service {
	s := &Service{
		rand:   rand.Reader,
		logger: log.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultService = NewService()

// Encrypt encrypts plaintext for the given recipient with the default service.
func Encrypt(plaintext []byte, recipientPublicKeyHex string) (*Envelope, error) {
	return defaultService.Encrypt(plaintext, recipientPublicKeyHex)
}

// Decrypt decrypts env with the default service.
func Decrypt(env *Envelope, recipientPrivateKeyHex string) ([]byte, error) {
	return defaultService.Decrypt(env, recipientPrivateKeyHex)
}

// Encrypt encrypts plaintext for the recipient whose public key is given as
// hex (compressed or uncompressed SEC1).
func (s *Service) Encrypt(plaintext []byte, recipientPublicKeyHex string) (*Envelope, error) {
	start := time.Now()
	recipient, err := ParsePublicKeyHex(recipientPublicKeyHex)
	if err != nil {
		return nil, s.finish(OpEncrypt, start, len(plaintext), err)
	}
	env, err := s.encrypt(recipient, plaintext)
	return env, s.finish(OpEncrypt, start, len(plaintext), err)
}

// EncryptTo is Encrypt for an already parsed public key.
func (s *Service) EncryptTo(recipient *PublicKey, plaintext []byte) (*Envelope, error) {
	start := time.Now()
	env, err := s.encrypt(recipient, plaintext)
	return env, s.finish(OpEncrypt, start, len(plaintext), err)
}

// Decrypt authenticates and decrypts env with the recipient's private key
// given as hex.
func (s *Service) Decrypt(env *Envelope, recipientPrivateKeyHex string) ([]byte, error) {
	start := time.Now()
	priv, err := ParsePrivateKeyHex(recipientPrivateKeyHex)
	if err != nil {
		return nil, s.finish(OpDecrypt, start, 0, err)
	}
	defer priv.Destroy()

	plaintext, err := s.decrypt(priv, env)
	return plaintext, s.finish(OpDecrypt, start, len(plaintext), err)
}

// DecryptWith is Decrypt for an already parsed private key.
func (s *Service) DecryptWith(priv *PrivateKey, env *Envelope) ([]byte, error) {
	start := time.Now()
	plaintext, err := s.decrypt(priv, env)
	return plaintext, s.finish(OpDecrypt, start, len(plaintext), err)
}

// encrypt runs the scheme:
//  1. generate an ephemeral key pair
//  2. ECDH with the recipient key
//  3. SHA-512 the shared secret into an AES key and a MAC key
//  4. AES-256-CBC under a fresh random IV
//  5. HMAC-SHA256 over iv || ephemeral public key || ciphertext
func (s *Service) encrypt(recipient *PublicKey, plaintext []byte) (*Envelope, error) {
	if recipient == nil {
		return nil, ErrInvalidPublicKey.WithCausef("recipient public key is nil")
	}

	ephemeral, err := Curve().GenerateKeyPair(s.rand)
	if err != nil {
		return nil, err
	}
	defer ephemeral.Destroy()

	secret, err := Agree(ephemeral, recipient)
	if err != nil {
		return nil, err
	}
	keys, err := DeriveKeys(secret)
	secret.SetInt64(0)
	if err != nil {
		return nil, err
	}
	defer keys.Destroy()

	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(s.rand, iv); err != nil {
		return nil, ErrEncryptionFailed.WithCause(err)
	}

	ciphertext, err := EncryptCBC(plaintext, keys.EncryptionKey, iv)
	if err != nil {
		return nil, err
	}

	ephemeralPublicKey := Curve().EncodePoint(ephemeral.Public())
	return newEnvelope(&rawEnvelope{
		ephemeralPublicKey: ephemeralPublicKey,
		iv:                 iv,
		mac:                ComputeMAC(keys.MACKey, iv, ephemeralPublicKey, ciphertext),
		ciphertext:         ciphertext,
	}), nil
}

// decrypt verifies the MAC before touching the ciphertext. The MAC covers the
// ephemeral public key exactly as it appears in the envelope.
func (s *Service) decrypt(priv *PrivateKey, env *Envelope) ([]byte, error) {
	raw, err := env.decode()
	if err != nil {
		return nil, err
	}

	ephemeral, err := Curve().DecodePoint(raw.ephemeralPublicKey)
	if err != nil {
		return nil, err
	}

	secret, err := Agree(priv, ephemeral)
	if err != nil {
		return nil, err
	}
	keys, err := DeriveKeys(secret)
	secret.SetInt64(0)
	if err != nil {
		return nil, err
	}
	defer keys.Destroy()

	if !VerifyMAC(keys.MACKey, raw.mac, raw.iv, raw.ephemeralPublicKey, raw.ciphertext) {
		return nil, ErrMacMismatch
	}
	return DecryptCBC(raw.ciphertext, keys.EncryptionKey, raw.iv)
}

func (s *Service) finish(op string, start time.Time, size int, err error) error {
	elapsed := time.Since(start)
	if s.observer != nil {
		s.observer.Observe(op, err, elapsed)
	}

	event := s.logger.Debug().
		Str("op", op).
		Int("plaintext_bytes", size).
		Dur("elapsed", elapsed)
	if err != nil {
		event.Str("result", Kind(err)).Err(err).Msg("ecies operation failed")
		return err
	}
	event.Str("result", Kind(nil)).Msg("ecies operation completed")
	return nil
}
