package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// PathExists reports whether the given path exists on disk.
// Permission errors and other stat failures are treated as "does not exist"
// since the caller cannot use the path either way.
func PathExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates the directory and any missing parents.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// DesktopPath returns the user's desktop directory, the traditional default
// save location for captured pages and transcripts. Falls back to the home
// directory, then the working directory, if the desktop cannot be resolved.
func DesktopPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		wd, err := os.Getwd()
		if err != nil {
			return "."
		}
		return wd
	}
	return filepath.Join(homeDir, "Desktop")
}
