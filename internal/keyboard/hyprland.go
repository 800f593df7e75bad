package keyboard

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
)

// hyprWindow is the subset of 'hyprctl activewindow -j' output we read.
type hyprWindow struct {
	Address string `json:"address"`
	Class   string `json:"class"`
	Title   string `json:"title"`
	Pid     int    `json:"pid"`
}

// underHyprland reports whether the session is a Hyprland compositor.
func underHyprland() bool {
	return os.Getenv("HYPRLAND_INSTANCE_SIGNATURE") != ""
}

// parseActiveWindow decodes hyprctl output. An empty object means nothing
// has focus (e.g. the desktop), which yields an empty title.
func parseActiveWindow(raw []byte) (string, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "{}" {
		return "", nil
	}
	var win hyprWindow
	if err := json.Unmarshal([]byte(trimmed), &win); err != nil {
		return "", fmt.Errorf("failed to parse hyprctl output: %w", err)
	}
	return win.Title, nil
}

func hyprlandActiveTitle(ctx context.Context) (string, error) {
	out, err := runTool(ctx, "hyprctl", "activewindow", "-j")
	if err != nil {
		return "", fmt.Errorf("failed to get active window: %w", err)
	}
	return parseActiveWindow([]byte(out))
}
