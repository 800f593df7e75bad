//go:build linux

package keyboard

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// lookPath is swapped out in tests.
var lookPath = exec.LookPath

func newPlatform(backend string) (Platform, error) {
	switch backend {
	case BackendXdotool:
		return &xdotoolPlatform{}, nil
	case BackendWtype:
		return &wtypePlatform{}, nil
	case BackendAuto:
		return detectPlatform(), nil
	}
	return nil, fmt.Errorf("%w: %s is not available on linux", ErrUnknownBackend, backend)
}

// detectPlatform prefers wtype on Wayland sessions where it is installed;
// everything else goes through xdotool (which also drives XWayland).
func detectPlatform() Platform {
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		if _, err := lookPath("wtype"); err == nil {
			slog.Debug("selected keyboard backend", "backend", BackendWtype)
			return &wtypePlatform{}
		}
	}
	slog.Debug("selected keyboard backend", "backend", BackendXdotool)
	return &xdotoolPlatform{}
}

type xdotoolPlatform struct{}

func (p *xdotoolPlatform) ActiveWindowTitle(ctx context.Context) (string, error) {
	out, err := runTool(ctx, "xdotool", "getwindowfocus", "getwindowname")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (p *xdotoolPlatform) TypeString(ctx context.Context, text string, interval time.Duration) error {
	_, err := runTool(ctx, "xdotool", xdotoolTypeArgs(text, interval)...)
	return err
}

func (p *xdotoolPlatform) PressKey(ctx context.Context, key Key) error {
	name, err := keysym(key)
	if err != nil {
		return err
	}
	_, err = runTool(ctx, "xdotool", "key", name)
	return err
}

func xdotoolTypeArgs(text string, interval time.Duration) []string {
	// "--" keeps text starting with a dash from being read as an option
	return []string{"type", "--delay", strconv.FormatInt(millis(interval), 10), "--", text}
}

type wtypePlatform struct{}

func (p *wtypePlatform) ActiveWindowTitle(ctx context.Context) (string, error) {
	if underHyprland() {
		return hyprlandActiveTitle(ctx)
	}
	return "", fmt.Errorf("%w: wtype cannot query the focused window outside Hyprland", ErrWindowTitleUnavailable)
}

func (p *wtypePlatform) TypeString(ctx context.Context, text string, interval time.Duration) error {
	_, err := runTool(ctx, "wtype", wtypeTypeArgs(text, interval)...)
	return err
}

func (p *wtypePlatform) PressKey(ctx context.Context, key Key) error {
	name, err := keysym(key)
	if err != nil {
		return err
	}
	_, err = runTool(ctx, "wtype", "-k", name)
	return err
}

func wtypeTypeArgs(text string, interval time.Duration) []string {
	return []string{"-d", strconv.FormatInt(millis(interval), 10), "--", text}
}
