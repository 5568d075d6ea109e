// Package errors provides typed error values for the kindle2md application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Window errors: reader window activation issues (ErrWindowNotFound)
//   - Capture errors: screenshot problems (ErrInvalidRegion, ErrNoDisplays)
//   - OCR errors: tesseract invocation failures (ErrTesseractNotFound)
//
// # Usage
//
// Return errors from internal packages:
//
//	if region.Width <= 0 || region.Height <= 0 {
//	    return nil, errors.ErrInvalidRegion
//	}
//
// Handle errors in the CLI layer:
//
//	err := window.Activate(keyword)
//	if errors.Is(err, kerrors.ErrWindowNotFound) {
//	    // Show user-friendly message with the available titles
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("capturing page %d: %w", page, err)
package errors
