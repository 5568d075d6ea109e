//go:build linux

package window

import (
	"fmt"
	"os/exec"
	"strings"

	kerrors "github.com/mizutanik/kindle2md/internal/errors"
)

// xdoKeys translates canonical key names to xdotool keysyms.
var xdoKeys = map[string]string{
	"right":    "Right",
	"left":     "Left",
	"up":       "Up",
	"down":     "Down",
	"pagedown": "Next",
	"pageup":   "Prior",
	"space":    "space",
	"enter":    "Return",
}

func activate(keyword string) error {
	if _, err := exec.LookPath("xdotool"); err != nil {
		return fmt.Errorf("%w: install xdotool to control the reader window", kerrors.ErrActivatorUnavailable)
	}

	// xdotool search exits non-zero when nothing matches.
	out, err := exec.Command("xdotool", "search", "--name", keyword).Output()
	ids := strings.Fields(string(out))
	if err != nil || len(ids) == 0 {
		return fmt.Errorf("%w: %q", kerrors.ErrWindowNotFound, keyword)
	}

	if err := exec.Command("xdotool", "windowactivate", "--sync", ids[0]).Run(); err != nil {
		return fmt.Errorf("failed to activate window %s: %w", ids[0], err)
	}
	return nil
}

func platformKeyName(key string) (string, bool) {
	name, ok := xdoKeys[key]
	return name, ok
}

func pressKey(key string) error {
	if _, err := exec.LookPath("xdotool"); err != nil {
		return fmt.Errorf("%w: install xdotool to send page-turn keys", kerrors.ErrActivatorUnavailable)
	}
	name, _ := platformKeyName(key)
	if err := exec.Command("xdotool", "key", name).Run(); err != nil {
		return fmt.Errorf("failed to press %s: %w", key, err)
	}
	return nil
}
