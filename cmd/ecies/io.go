package main

import (
	"io"
	"io/fs"
	"os"

	"github.com/kochabx/ecies/errors"
)

func readInput(a *app, path string) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "read stdin")
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, errors.CodeNotFound, "input %s not found", path)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "read %s", path)
	}
	return data, nil
}

// writeOutput creates files with owner-only permissions since they may
// hold plaintext.
func writeOutput(a *app, path string, data []byte) error {
	if path == "" {
		if _, err := a.stdout.Write(data); err != nil {
			return errors.Wrap(err, errors.CodeInternal, "write stdout")
		}
		return nil
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "write %s", path)
	}
	return nil
}
