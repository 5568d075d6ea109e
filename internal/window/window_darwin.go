//go:build darwin

package window

import (
	"fmt"
	"os/exec"
	"strings"

	kerrors "github.com/mizutanik/kindle2md/internal/errors"
)

// macKeyCodes translates canonical key names to macOS virtual key codes
// for System Events "key code".
var macKeyCodes = map[string]string{
	"right":    "124",
	"left":     "123",
	"up":       "126",
	"down":     "125",
	"pagedown": "121",
	"pageup":   "116",
	"space":    "49",
	"enter":    "36",
}

func activate(keyword string) error {
	if _, err := exec.LookPath("osascript"); err != nil {
		return fmt.Errorf("%w: osascript not found", kerrors.ErrActivatorUnavailable)
	}

	script := fmt.Sprintf(
		`tell application "System Events" to set frontmost of (first process whose name contains %q) to true`,
		strings.ReplaceAll(keyword, `"`, ``))
	if err := exec.Command("osascript", "-e", script).Run(); err != nil {
		return fmt.Errorf("%w: %q", kerrors.ErrWindowNotFound, keyword)
	}
	return nil
}

func platformKeyName(key string) (string, bool) {
	code, ok := macKeyCodes[key]
	return code, ok
}

func pressKey(key string) error {
	if _, err := exec.LookPath("osascript"); err != nil {
		return fmt.Errorf("%w: osascript not found", kerrors.ErrActivatorUnavailable)
	}
	code, _ := platformKeyName(key)
	script := fmt.Sprintf(`tell application "System Events" to key code %s`, code)
	if err := exec.Command("osascript", "-e", script).Run(); err != nil {
		return fmt.Errorf("failed to press %s: %w", key, err)
	}
	return nil
}
