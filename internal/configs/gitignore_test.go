package configs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func countLine(t *testing.T, path, line string) int {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	count := 0
	for _, l := range strings.Split(string(data), "\n") {
		if l == line {
			count++
		}
	}
	return count
}

func TestEnsureGitignoreCreatesFile(t *testing.T) {
	tempDir := t.TempDir()
	store := NewStore(tempDir)

	if err := store.EnsureGitignore(); err != nil {
		t.Fatalf("EnsureGitignore failed: %v", err)
	}

	path := filepath.Join(tempDir, ".gitignore")
	for _, line := range []string{LocalConfigFile, "screenshot_*.png", "screenshots/", "!README.md"} {
		if countLine(t, path, line) != 1 {
			t.Errorf("Expected exactly one %q line", line)
		}
	}
}

func TestEnsureGitignoreIsIdempotent(t *testing.T) {
	tempDir := t.TempDir()
	store := NewStore(tempDir)

	if err := store.EnsureGitignore(); err != nil {
		t.Fatalf("First EnsureGitignore failed: %v", err)
	}
	first, err := os.ReadFile(filepath.Join(tempDir, ".gitignore"))
	if err != nil {
		t.Fatalf("Failed to read .gitignore: %v", err)
	}

	if err := store.EnsureGitignore(); err != nil {
		t.Fatalf("Second EnsureGitignore failed: %v", err)
	}
	second, err := os.ReadFile(filepath.Join(tempDir, ".gitignore"))
	if err != nil {
		t.Fatalf("Failed to read .gitignore: %v", err)
	}

	if string(first) != string(second) {
		t.Error("Expected second run to leave .gitignore unchanged")
	}
}

func TestEnsureGitignoreAppendsToExisting(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, ".gitignore")
	// No trailing newline on purpose.
	if err := os.WriteFile(path, []byte("node_modules/\n"+LocalConfigFile), 0644); err != nil {
		t.Fatalf("Failed to seed .gitignore: %v", err)
	}

	store := NewStore(tempDir)
	if err := store.EnsureGitignore(); err != nil {
		t.Fatalf("EnsureGitignore failed: %v", err)
	}

	if countLine(t, path, "node_modules/") != 1 {
		t.Error("Expected existing entry to be kept")
	}
	if countLine(t, path, LocalConfigFile) != 1 {
		t.Error("Expected already-present entry not to be duplicated")
	}
	if countLine(t, path, "screenshot_*.png") != 1 {
		t.Error("Expected missing entries to be appended")
	}
}
