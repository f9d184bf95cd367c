package main

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/kochabx/ecies/core/crypto/ecies"
	"github.com/kochabx/ecies/errors"
)

// runEncrypt encrypts the whole input, or each non-empty line of it in
// lines mode.
func runEncrypt(ctx context.Context, a *app, publicKeyHex, in, out string, lines bool) error {
	data, err := readInput(a, in)
	if err != nil {
		return err
	}

	var result any
	if lines {
		b, err := a.batch()
		if err != nil {
			return err
		}
		defer b.Release()

		envelopes, err := b.EncryptAll(ctx, splitLines(data), publicKeyHex)
		if err != nil {
			return err
		}
		result = envelopes
	} else {
		env, err := a.svc.Encrypt(data, publicKeyHex)
		if err != nil {
			return err
		}
		result = env
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "encode envelope")
	}
	a.logger.Info().Int("bytes", len(data)).Bool("lines", lines).Msg("encrypted")
	return writeOutput(a, out, append(encoded, '\n'))
}

// runDecrypt accepts a single envelope object or an array of them. An array
// decrypts to one plaintext per line.
func runDecrypt(ctx context.Context, a *app, privateKeyHex, in, out string) error {
	data, err := readInput(a, in)
	if err != nil {
		return err
	}

	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var envelopes []*ecies.Envelope
		if err := json.Unmarshal(data, &envelopes); err != nil {
			return ecies.ErrDecoding.WithCause(err)
		}

		b, err := a.batch()
		if err != nil {
			return err
		}
		defer b.Release()

		plaintexts, err := b.DecryptAll(ctx, envelopes, privateKeyHex)
		if err != nil {
			return err
		}
		a.logger.Info().Int("envelopes", len(envelopes)).Msg("decrypted")

		var buf bytes.Buffer
		for _, p := range plaintexts {
			buf.Write(p)
			buf.WriteByte('\n')
		}
		return writeOutput(a, out, buf.Bytes())
	}

	env, err := ecies.ParseEnvelope(data)
	if err != nil {
		return err
	}
	plaintext, err := a.svc.Decrypt(env, privateKeyHex)
	if err != nil {
		return err
	}
	a.logger.Info().Int("bytes", len(plaintext)).Msg("decrypted")
	return writeOutput(a, out, plaintext)
}

func splitLines(data []byte) [][]byte {
	var lines [][]byte
	for line := range bytes.Lines(data) {
		line = bytes.TrimRight(line, "\r\n")
		if len(line) > 0 {
			lines = append(lines, line)
		}
	}
	return lines
}
