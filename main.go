package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/connorhough/entercaptcha/cmd"
	"github.com/connorhough/entercaptcha/internal/typer"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		// The missing-argument message has already been printed to stdout.
		if !errors.Is(err, typer.ErrMissingText) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
