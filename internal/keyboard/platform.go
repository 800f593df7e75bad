// Package keyboard injects simulated keystrokes into whatever window holds
// OS input focus. Each supported OS provides one or more backends that shell
// out to the native automation tool (xdotool, wtype, osascript).
package keyboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Backend names accepted by New.
const (
	BackendAuto      = "auto"
	BackendXdotool   = "xdotool"
	BackendWtype     = "wtype"
	BackendOsascript = "osascript"
)

var (
	// ErrUnsupportedPlatform is returned when no backend exists for the running OS.
	ErrUnsupportedPlatform = errors.New("keystroke injection is not supported on this platform")

	// ErrUnknownBackend is returned for a backend name New does not recognise.
	ErrUnknownBackend = errors.New("unknown keyboard backend")

	// ErrWindowTitleUnavailable is returned when the backend cannot report the focused window.
	ErrWindowTitleUnavailable = errors.New("active window title is not available")
)

// Platform defines the OS-specific operations needed to type into the focused window.
type Platform interface {
	// ActiveWindowTitle returns the title of the currently focused window.
	ActiveWindowTitle(ctx context.Context) (string, error)

	// TypeString types text into the focused window, pausing interval between keystrokes.
	TypeString(ctx context.Context, text string, interval time.Duration) error

	// PressKey simulates a single press of a named special key.
	PressKey(ctx context.Context, key Key) error
}

// Backends lists every backend name, including auto.
func Backends() []string {
	return []string{BackendAuto, BackendXdotool, BackendWtype, BackendOsascript}
}

// ValidBackend reports whether name is a known backend. The empty string means auto.
func ValidBackend(name string) bool {
	if name == "" {
		return true
	}
	for _, b := range Backends() {
		if strings.EqualFold(name, b) {
			return true
		}
	}
	return false
}

// New returns the Platform for the named backend on the running OS.
func New(backend string) (Platform, error) {
	backend = strings.ToLower(strings.TrimSpace(backend))
	if backend == "" {
		backend = BackendAuto
	}
	if !ValidBackend(backend) {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownBackend, backend, strings.Join(Backends(), ", "))
	}
	return newPlatform(backend)
}

// millis converts an inter-keystroke interval to the whole milliseconds the
// automation tools accept.
func millis(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	return d.Milliseconds()
}
