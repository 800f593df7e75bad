package typer

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingText is returned when no text to type was supplied.
	ErrMissingText = errors.New("no CAPTCHA input received")

	// ErrWindowMismatch is returned when the focused window fails the title filter.
	ErrWindowMismatch = errors.New("active window does not match filter")

	// ErrNoPlatform is returned when Run is given a nil Platform.
	ErrNoPlatform = errors.New("no keyboard platform available")
)

// KeystrokeError reports a failure in the keystroke injection backend.
type KeystrokeError struct {
	Op  string
	Err error
}

func (e *KeystrokeError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *KeystrokeError) Unwrap() error {
	return e.Err
}
