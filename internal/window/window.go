package window

import (
	"fmt"
	"strings"

	kerrors "github.com/mizutanik/kindle2md/internal/errors"
)

// Activate brings the first window whose title contains keyword to the
// foreground. Matching is done by the platform window tool and is a
// substring match, so "Kindle" finds "Kindle for PC - 吾輩は猫である".
func Activate(keyword string) error {
	return activate(keyword)
}

// PageTurn presses the given key once to advance (or rewind) the page in
// the foreground reader. The key is a user-facing name like "right" or
// "pagedown"; see NormalizeKey for the accepted set.
func PageTurn(key string) error {
	normalized, ok := NormalizeKey(key)
	if !ok {
		return fmt.Errorf("%w: %q", kerrors.ErrUnknownKey, key)
	}
	return pressKey(normalized)
}

// keyAliases maps user-facing spellings to canonical key names. The
// canonical names are what the per-platform pressKey implementations
// translate into tool-specific key identifiers.
var keyAliases = map[string]string{
	"right":     "right",
	"left":      "left",
	"up":        "up",
	"down":      "down",
	"pagedown":  "pagedown",
	"page_down": "pagedown",
	"pgdn":      "pagedown",
	"pageup":    "pageup",
	"page_up":   "pageup",
	"pgup":      "pageup",
	"space":     "space",
	"enter":     "enter",
	"return":    "enter",
}

// NormalizeKey canonicalizes a page-turn key name. Reports false for names
// no platform backend understands.
func NormalizeKey(name string) (string, bool) {
	canonical, ok := keyAliases[strings.ToLower(strings.TrimSpace(name))]
	return canonical, ok
}
