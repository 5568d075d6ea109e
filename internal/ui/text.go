package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter renders one semantic kind of CLI output. With a capable terminal
// the text is painted; without one it falls back to a plain-text wrapping so
// the meaning still reads (commands keep their backticks, titles their
// quotes).
type Formatter struct {
	paint      *color.Color
	pre, after string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...any) string {
	return f.render(fmt.Sprint(a...))
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...any) string {
	return f.render(fmt.Sprintf(format, a...))
}

func (f Formatter) render(text string) string {
	if colorDisabled() {
		return f.pre + text + f.after
	}
	return f.paint.Sprint(text)
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// colorDisabled reports whether output should stay plain: NO_COLOR
// (https://no-color.org/) wins, then fatih/color's own terminal detection
// (TERM=dumb, piped output, and so on).
func colorDisabled() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

// The semantic formatters used across the commands. Each pairs a color with
// a plain-text fallback decoration; the ones whose meaning is carried by a
// symbol already (✓, ✗, ⚠, →) need no fallback.
var (
	// Success marks a completed step, usually prefixed to a ✓.
	Success = Formatter{paint: color.New(color.FgGreen)}

	// Error marks a failed step, usually prefixed to a ✗.
	Error = Formatter{paint: color.New(color.FgRed)}

	// Warning marks a recoverable problem, usually prefixed to a ⚠.
	Warning = Formatter{paint: color.New(color.FgYellow)}

	// Info marks a hint or follow-up suggestion, usually prefixed to a →.
	Info = Formatter{paint: color.New(color.FgCyan)}

	// Code renders a runnable command like "kindle2md capture run";
	// backticks stand in for the color on plain terminals.
	Code = Formatter{paint: color.New(color.FgYellow), pre: "`", after: "`"}

	// Path renders a file or folder path. Paths read as themselves, so the
	// plain fallback adds nothing.
	Path = Formatter{paint: color.New(color.FgYellow)}

	// Highlight renders a user-supplied value worth the eye's attention: a
	// book title, a window keyword, a page-turn key name.
	Highlight = Formatter{paint: color.New(color.FgCyan), pre: "'", after: "'"}

	// Muted renders secondary detail like timestamps and page counts.
	Muted = Formatter{paint: color.New(color.FgHiBlack), pre: "(", after: ")"}
)
