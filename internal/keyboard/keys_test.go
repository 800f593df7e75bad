package keyboard

import (
	"errors"
	"testing"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Key
		wantErr bool
	}{
		{name: "enter", input: "enter", want: KeyEnter},
		{name: "return alias", input: "Return", want: KeyEnter},
		{name: "escape alias", input: "ESC", want: KeyEscape},
		{name: "tab with spaces", input: "  tab ", want: KeyTab},
		{name: "space", input: "space", want: KeySpace},
		{name: "none", input: "none", want: KeyNone},
		{name: "empty means none", input: "", want: KeyNone},
		{name: "unknown", input: "F13", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKey(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownKey) {
					t.Errorf("expected ErrUnknownKey, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyNames(t *testing.T) {
	if name, _ := keysym(KeyEnter); name != "Return" {
		t.Errorf("keysym(enter) = %q, want Return", name)
	}
	if code, _ := macKeyCode(KeyEnter); code != 36 {
		t.Errorf("macKeyCode(enter) = %d, want 36", code)
	}
	if _, err := keysym(KeyNone); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("keysym(none) should fail, got %v", err)
	}
	if _, err := macKeyCode(KeyNone); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("macKeyCode(none) should fail, got %v", err)
	}
}

func TestValidBackend(t *testing.T) {
	for _, name := range []string{"", "auto", "xdotool", "WTYPE", "osascript"} {
		if !ValidBackend(name) {
			t.Errorf("ValidBackend(%q) = false, want true", name)
		}
	}
	if ValidBackend("ydotool") {
		t.Error("ValidBackend(ydotool) = true, want false")
	}
}

func TestNew_UnknownBackend(t *testing.T) {
	if _, err := New("ydotool"); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("expected ErrUnknownBackend, got %v", err)
	}
}
