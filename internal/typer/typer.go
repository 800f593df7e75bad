// Package typer types a piece of text into the focused window after a short
// pause, then presses a submit key.
package typer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/connorhough/entercaptcha/internal/keyboard"
)

const (
	// DefaultDelay gives the user time to focus the target window.
	DefaultDelay = 2 * time.Second
	// DefaultInterval is the pause between keystrokes.
	DefaultInterval = 50 * time.Millisecond
)

// Options controls the timing and the final keystroke of Run.
type Options struct {
	Delay        time.Duration
	Interval     time.Duration
	SubmitKey    keyboard.Key
	WindowFilter string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Delay:     DefaultDelay,
		Interval:  DefaultInterval,
		SubmitKey: keyboard.KeyEnter,
	}
}

// Run waits opts.Delay, types text into the focused window and presses
// opts.SubmitKey. A status line is written to out before typing.
func Run(ctx context.Context, p keyboard.Platform, out io.Writer, text string, opts Options) error {
	if p == nil {
		return ErrNoPlatform
	}

	slog.Debug("waiting for focus", "delay", opts.Delay)
	if err := SystemClock.Sleep(ctx, opts.Delay); err != nil {
		return err
	}

	if opts.WindowFilter != "" {
		title, err := p.ActiveWindowTitle(ctx)
		if err != nil {
			return fmt.Errorf("failed to get active window title: %w", err)
		}

		slog.Debug("checking active window", "title", title, "filter", opts.WindowFilter)
		if !strings.Contains(strings.ToLower(title), strings.ToLower(opts.WindowFilter)) {
			return fmt.Errorf("%w: window %q, filter %q", ErrWindowMismatch, title, opts.WindowFilter)
		}
	}

	fmt.Fprintf(out, "Typing CAPTCHA: %s\n", text)

	if err := p.TypeString(ctx, text, opts.Interval); err != nil {
		return &KeystrokeError{Op: "type text", Err: err}
	}
	slog.Debug("typed text", "chars", utf8.RuneCountInString(text), "interval", opts.Interval)

	if opts.SubmitKey == "" || opts.SubmitKey == keyboard.KeyNone {
		slog.Debug("submit key disabled")
		return nil
	}
	if err := p.PressKey(ctx, opts.SubmitKey); err != nil {
		return &KeystrokeError{Op: "press " + string(opts.SubmitKey), Err: err}
	}

	return nil
}
