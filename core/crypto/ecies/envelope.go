package ecies

import (
	"encoding/hex"
	"encoding/json"
	"strings"
	"sync"

	govalidator "github.com/go-playground/validator/v10"

	"github.com/kochabx/ecies/core/validator"
)

// Envelope is the transportable result of Encrypt. Every field except
// WasString is lowercase hex. WasString is caller metadata; it is neither
// authenticated nor interpreted here.
type Envelope struct {
	EphemeralPublicKey string `json:"ephemeralPK" validate:"required,hexadecimal,len=66|len=130"`
	IV                 string `json:"iv" validate:"required,hexadecimal,len=32"`
	MAC                string `json:"mac" validate:"required,hexadecimal,len=64"`
	Ciphertext         string `json:"cipherText" validate:"required,hexadecimal,cbc_blocks"`
	WasString          bool   `json:"wasString,omitempty"`
}

// cbc_blocks: a hex string holding a whole number of AES blocks
func cbcBlocks(fl govalidator.FieldLevel) bool {
	n := fl.Field().Len()
	return n > 0 && n%(2*IVSize) == 0
}

var envelopeValidator = sync.OnceValue(func() validator.Validator {
	return validator.New(validator.WithValidation("cbc_blocks", cbcBlocks,
		"{0} must hold a whole number of cipher blocks"))
})

// rawEnvelope is an Envelope with its hex fields decoded.
type rawEnvelope struct {
	ephemeralPublicKey []byte
	iv                 []byte
	mac                []byte
	ciphertext         []byte
}

func newEnvelope(raw *rawEnvelope) *Envelope {
	return &Envelope{
		EphemeralPublicKey: hex.EncodeToString(raw.ephemeralPublicKey),
		IV:                 hex.EncodeToString(raw.iv),
		MAC:                hex.EncodeToString(raw.mac),
		Ciphertext:         hex.EncodeToString(raw.ciphertext),
	}
}

// ParseEnvelope decodes a JSON envelope and checks its shape.
func ParseEnvelope(data []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, ErrDecoding.WithCause(err)
	}
	if err := env.Validate(); err != nil {
		return nil, err
	}
	return &env, nil
}

// Validate checks that every field is present, hex and correctly sized.
func (e *Envelope) Validate() error {
	if err := envelopeValidator().Struct(e); err != nil {
		return ErrDecoding.WithMetadata(map[string]string{
			"fields": strings.Join(validator.Fields(err), ","),
		}).WithCause(err)
	}
	return nil
}

// JSON returns the envelope in its wire form.
func (e *Envelope) JSON() ([]byte, error) {
	return json.Marshal(e)
}

func (e *Envelope) decode() (*rawEnvelope, error) {
	if e == nil {
		return nil, ErrDecoding.WithCausef("envelope is nil")
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}

	var (
		raw rawEnvelope
		err error
	)
	for _, f := range []struct {
		name string
		src  string
		dst  *[]byte
	}{
		{"ephemeralPK", e.EphemeralPublicKey, &raw.ephemeralPublicKey},
		{"iv", e.IV, &raw.iv},
		{"mac", e.MAC, &raw.mac},
		{"cipherText", e.Ciphertext, &raw.ciphertext},
	} {
		if *f.dst, err = hex.DecodeString(f.src); err != nil {
			return nil, ErrDecoding.WithMetadata(map[string]string{"fields": f.name}).WithCause(err)
		}
	}
	return &raw, nil
}
