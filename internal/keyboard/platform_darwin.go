//go:build darwin

package keyboard

import (
	"context"
	"fmt"
	"strings"
	"time"
)

func newPlatform(backend string) (Platform, error) {
	switch backend {
	case BackendAuto, BackendOsascript:
		return &darwinPlatform{}, nil
	}
	return nil, fmt.Errorf("%w: %s is not available on darwin", ErrUnknownBackend, backend)
}

type darwinPlatform struct{}

func (p *darwinPlatform) ActiveWindowTitle(ctx context.Context) (string, error) {
	script := `tell application "System Events" to get name of window 1 of (first process whose frontmost is true)`
	out, err := runTool(ctx, "osascript", "-e", script)
	if err != nil {
		// Fallback to process name if window has no title
		script = `tell application "System Events" to get name of first process whose frontmost is true`
		out2, err2 := runTool(ctx, "osascript", "-e", script)
		if err2 == nil {
			return strings.TrimSpace(out2), nil
		}
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (p *darwinPlatform) TypeString(ctx context.Context, text string, interval time.Duration) error {
	if text == "" {
		return nil
	}
	_, err := runTool(ctx, "osascript", "-e", typeScript(text, interval))
	return err
}

func (p *darwinPlatform) PressKey(ctx context.Context, key Key) error {
	code, err := macKeyCode(key)
	if err != nil {
		return err
	}
	_, err = runTool(ctx, "osascript", "-e", keyCodeScript(code))
	return err
}
