// Package utils provides shared utility functions for the kindle2md application.
//
// This package contains general-purpose helpers used across multiple packages.
// Functions are organized into logical groups:
//
// # Filesystem Utilities
//
// Functions for working with the filesystem:
//   - PathExists: reports whether a path exists on disk
//   - EnsureDir: creates a directory tree
//   - DesktopPath: resolves the user's desktop directory
//
// # String Utilities
//
// Functions for string manipulation and formatting:
//   - FormatPaths: formats file paths for human-readable output
//   - TruncateString: shortens long values for list display
package utils
