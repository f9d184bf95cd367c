// Command ecies encrypts and decrypts data with ECIES over secp256k1.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kochabx/ecies/errors"
	"github.com/kochabx/ecies/log"
)

func main() {
	// an interrupt cancels the remaining items of a batch
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newCommand(os.Stdin, os.Stdout).Run(ctx, os.Args)
	stop()

	if err != nil {
		log.Error().Err(err).Msg("ecies failed")
		os.Exit(errors.ExitCode(err))
	}
}
