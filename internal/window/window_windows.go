//go:build windows

package window

import (
	"fmt"
	"os/exec"
	"strings"

	kerrors "github.com/mizutanik/kindle2md/internal/errors"
)

// sendKeysNames translates canonical key names to SendKeys codes.
var sendKeysNames = map[string]string{
	"right":    "{RIGHT}",
	"left":     "{LEFT}",
	"up":       "{UP}",
	"down":     "{DOWN}",
	"pagedown": "{PGDN}",
	"pageup":   "{PGUP}",
	"space":    " ",
	"enter":    "{ENTER}",
}

func activate(keyword string) error {
	if _, err := exec.LookPath("powershell"); err != nil {
		return fmt.Errorf("%w: powershell not found", kerrors.ErrActivatorUnavailable)
	}

	// AppActivate does a substring title match and returns false when no
	// window qualified; the exit 1 maps that onto ErrWindowNotFound.
	script := fmt.Sprintf(
		"$shell = New-Object -ComObject WScript.Shell; if (-not $shell.AppActivate('%s')) { exit 1 }",
		strings.ReplaceAll(keyword, "'", "''"))
	if err := exec.Command("powershell", "-NoProfile", "-Command", script).Run(); err != nil {
		return fmt.Errorf("%w: %q", kerrors.ErrWindowNotFound, keyword)
	}
	return nil
}

func platformKeyName(key string) (string, bool) {
	name, ok := sendKeysNames[key]
	return name, ok
}

func pressKey(key string) error {
	if _, err := exec.LookPath("powershell"); err != nil {
		return fmt.Errorf("%w: powershell not found", kerrors.ErrActivatorUnavailable)
	}
	name, _ := platformKeyName(key)
	script := fmt.Sprintf(
		"Add-Type -AssemblyName System.Windows.Forms; [System.Windows.Forms.SendKeys]::SendWait('%s')",
		name)
	if err := exec.Command("powershell", "-NoProfile", "-Command", script).Run(); err != nil {
		return fmt.Errorf("failed to press %s: %w", key, err)
	}
	return nil
}
