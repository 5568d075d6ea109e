package utils

import (
	"strings"
	"testing"
)

func TestFormatPaths(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	got := FormatPaths([]string{"/books/a.png", "/books/b.png"})
	if !strings.Contains(got, "- /books/a.png") || !strings.Contains(got, "- /books/b.png") {
		t.Errorf("FormatPaths() = %q", got)
	}
	if !strings.HasPrefix(got, "\n") || !strings.HasSuffix(got, "\n") {
		t.Errorf("FormatPaths() should be newline-delimited, got %q", got)
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"shorter than max", "abc", 10, "abc"},
		{"exactly max", "abcde", 5, "abcde"},
		{"truncated with ellipsis", "abcdefgh", 5, "abcd…"},
		{"multibyte runes", "吾輩は猫である", 4, "吾輩は…"},
		{"max one", "abc", 1, "a"},
		{"zero max keeps input", "abc", 0, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.in, tt.max); got != tt.want {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestPathExists(t *testing.T) {
	if PathExists("") {
		t.Error("empty path should not exist")
	}
	if PathExists("/no/such/path/anywhere") {
		t.Error("missing path should not exist")
	}
	if !PathExists(t.TempDir()) {
		t.Error("temp dir should exist")
	}
}
