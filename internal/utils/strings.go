package utils

import (
	"strings"

	"github.com/mizutanik/kindle2md/internal/ui"
)

// FormatPaths formats a slice of paths into a readable indented list.
func FormatPaths(paths []string) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, path := range paths {
		b.WriteString("    - ")
		b.WriteString(ui.Path.Sprint(path))
		b.WriteString("\n")
	}
	return b.String()
}

// TruncateString shortens s to max runes, appending an ellipsis when cut.
// Used for displaying long book titles in list output.
func TruncateString(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
