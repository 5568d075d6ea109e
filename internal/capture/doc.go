// Package capture takes region screenshots of the reader window and manages
// the resulting image files.
//
// Screenshots are taken with github.com/kbinani/screenshot from a
// configurable screen rectangle and written as PNG, one file per page,
// named by a zero-padded page counter (screenshot_0001.png). The package
// also lists and cleans up image sets for the OCR stage.
//
// Capture is plain glue over the platform screenshot API: there is no retry
// or change detection. A page that fails to capture is reported to the
// caller, which decides whether to continue.
package capture
