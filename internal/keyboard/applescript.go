package keyboard

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// quoteAppleScript escapes s for use inside an AppleScript string literal.
// Backslashes go first so the quote escapes are not doubled.
func quoteAppleScript(s string) string {
	escaped := strings.ReplaceAll(s, "\\", "\\\\")
	escaped = strings.ReplaceAll(escaped, "\"", "\\\"")
	return "\"" + escaped + "\""
}

// typeScript builds a System Events script that sends text one character at
// a time with interval between keystrokes. Newlines and tabs become Return
// and Tab key presses, as they do with xdotool and wtype.
func typeScript(text string, interval time.Duration) string {
	var b strings.Builder
	b.WriteString("tell application \"System Events\"\n")
	first := true
	for _, r := range text {
		if !first && interval > 0 {
			fmt.Fprintf(&b, "\tdelay %s\n", strconv.FormatFloat(interval.Seconds(), 'f', -1, 64))
		}
		switch r {
		case '\n', '\r':
			code, _ := macKeyCode(KeyEnter)
			fmt.Fprintf(&b, "\tkey code %d\n", code)
		case '\t':
			code, _ := macKeyCode(KeyTab)
			fmt.Fprintf(&b, "\tkey code %d\n", code)
		default:
			fmt.Fprintf(&b, "\tkeystroke %s\n", quoteAppleScript(string(r)))
		}
		first = false
	}
	b.WriteString("end tell")
	return b.String()
}

func keyCodeScript(code int) string {
	return fmt.Sprintf(`tell application "System Events" to key code %d`, code)
}
