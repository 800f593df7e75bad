package keyboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// runTool executes an automation tool and returns its stdout. The arguments
// are kept out of errors and logs since they carry the typed text.
func runTool(ctx context.Context, name string, args ...string) (string, error) {
	slog.Debug("running automation tool", "tool", name, "args", len(args))

	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%s failed: %w (stderr: %s)", name, err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return string(out), nil
}
