package keyboard

import (
	"errors"
	"fmt"
	"strings"
)

// Key names a special (non-character) key.
type Key string

const (
	KeyEnter  Key = "enter"
	KeyTab    Key = "tab"
	KeyEscape Key = "escape"
	KeySpace  Key = "space"

	// KeyNone means no key is pressed.
	KeyNone Key = "none"
)

// ErrUnknownKey is returned by ParseKey for names it does not recognise.
var ErrUnknownKey = errors.New("unknown key")

var keyAliases = map[string]Key{
	"":       KeyNone,
	"none":   KeyNone,
	"enter":  KeyEnter,
	"return": KeyEnter,
	"tab":    KeyTab,
	"escape": KeyEscape,
	"esc":    KeyEscape,
	"space":  KeySpace,
}

// ParseKey maps a user-supplied key name to a Key. Matching is case-insensitive
// and an empty name means KeyNone.
func ParseKey(name string) (Key, error) {
	k, ok := keyAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w %q (valid: enter, tab, escape, space, none)", ErrUnknownKey, name)
	}
	return k, nil
}

// keysym returns the X keysym name used by xdotool and wtype.
func keysym(k Key) (string, error) {
	switch k {
	case KeyEnter:
		return "Return", nil
	case KeyTab:
		return "Tab", nil
	case KeyEscape:
		return "Escape", nil
	case KeySpace:
		return "space", nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownKey, string(k))
}

// macKeyCode returns the virtual key code System Events expects for k.
func macKeyCode(k Key) (int, error) {
	switch k {
	case KeyEnter:
		return 36, nil
	case KeyTab:
		return 48, nil
	case KeyEscape:
		return 53, nil
	case KeySpace:
		return 49, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownKey, string(k))
}
