package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// gitignoreEntries is the fixed block of patterns that keeps machine-local
// config and generated artifacts out of version control. Blank strings mark
// paragraph breaks and are never written as standalone lines.
var gitignoreEntries = []string{
	"# Machine-local configuration",
	LocalConfigFile,
	"sessions.jsonl",
	"",
	"# OCR output",
	"output.md",
	"*.md",
	"!README.md",
	"",
	"# Screenshots",
	"screenshot_*.png",
	"screenshots/",
	"",
}

// EnsureGitignore appends the ignore patterns for local config, transcripts,
// and screenshots to .gitignore in the base directory. Lines already present
// verbatim are skipped, so repeated runs never duplicate entries.
func (s *Store) EnsureGitignore() error {
	path := filepath.Join(s.BaseDir, ".gitignore")

	var existing []string
	if data, err := os.ReadFile(path); err == nil {
		existing = strings.Split(string(data), "\n")
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("reading .gitignore: %w", err)
	}

	present := make(map[string]bool, len(existing))
	for _, line := range existing {
		present[line] = true
	}

	var missing []string
	for _, entry := range gitignoreEntries {
		if strings.TrimSpace(entry) == "" || present[entry] {
			continue
		}
		missing = append(missing, entry)
	}
	if len(missing) == 0 {
		return nil
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening .gitignore: %w", err)
	}
	defer file.Close()

	var b strings.Builder
	if len(existing) > 0 && existing[len(existing)-1] != "" {
		b.WriteString("\n")
	}
	b.WriteString(strings.Join(missing, "\n"))
	b.WriteString("\n")

	if _, err := file.WriteString(b.String()); err != nil {
		return fmt.Errorf("appending to .gitignore: %w", err)
	}
	return nil
}
