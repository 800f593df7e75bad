package typer

import (
	"context"
	"fmt"
	"time"

	"github.com/connorhough/entercaptcha/internal/keyboard"
)

// call is one interaction observed by the mocks, in order.
type call struct {
	Op       string
	Text     string
	Interval time.Duration
	Key      keyboard.Key
	Duration time.Duration
}

type MockPlatform struct {
	WindowTitle string
	FailTitle   bool
	FailType    bool
	FailKey     bool

	calls *[]call
}

func (m *MockPlatform) ActiveWindowTitle(ctx context.Context) (string, error) {
	if m.FailTitle {
		return "", fmt.Errorf("mock error getting title")
	}
	return m.WindowTitle, nil
}

func (m *MockPlatform) TypeString(ctx context.Context, text string, interval time.Duration) error {
	if m.FailType {
		return fmt.Errorf("mock error typing")
	}
	*m.calls = append(*m.calls, call{Op: "type", Text: text, Interval: interval})
	return nil
}

func (m *MockPlatform) PressKey(ctx context.Context, key keyboard.Key) error {
	if m.FailKey {
		return fmt.Errorf("mock error pressing key")
	}
	*m.calls = append(*m.calls, call{Op: "press", Key: key})
	return nil
}

type MockClock struct {
	Elapsed  time.Duration
	SleepErr error

	calls *[]call
}

func (m *MockClock) Sleep(ctx context.Context, d time.Duration) error {
	*m.calls = append(*m.calls, call{Op: "sleep", Duration: d})
	if m.SleepErr != nil {
		return m.SleepErr
	}
	m.Elapsed += d
	return nil
}

// Ensure MockPlatform satisfies the Platform interface
var _ keyboard.Platform = &MockPlatform{}
