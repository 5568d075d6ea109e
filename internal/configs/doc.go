// Package configs manages layered configuration for kindle2md.
//
// Configuration is stored as pretty-printed JSON at two levels inside the
// project base directory:
//
//   - Shared config: config.json (versioned, identical across machines)
//   - Local config: config.local.json (machine-specific, git-ignored)
//
// # Layering
//
// Both layers are loaded once at Store construction. Each file is deep-merged
// over its built-in defaults: user scalars override, nested maps merge
// recursively, and no default key is ever dropped by a partial file. A
// missing, unreadable, or malformed file leaves the layer on built-in
// defaults — loading never fails the process. The LayerStatus fields record
// which source each layer ended up on.
//
// # Lookup
//
// Values are addressed by dotted paths ("app.title",
// "user_preferences.last_save_folder"). Get consults the local document
// first, then the shared one, then a caller-supplied default; nil values
// count as absent.
//
// # Domain accessors
//
// Typed accessors wrap the dynamic documents for the values the capture
// workflow needs:
//
//   - CaptureRegion / SetCaptureRegion: the screen rectangle to shoot
//   - SaveFolder / SetSaveFolder: where images and transcripts go
//   - RecentProjects / AddRecentProject: bounded most-recent-first history
//     of captured books, deduplicated by title
//
// Setters persist the whole local document immediately; a crash mid-write
// can truncate the file, which the next load treats as malformed and
// replaces with defaults.
//
// # Git hygiene
//
// EnsureGitignore idempotently appends ignore patterns for the local config
// file, generated Markdown, and screenshots to the base directory's
// .gitignore.
package configs
