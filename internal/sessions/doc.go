// Package sessions keeps an append-only JSON Lines history of capture and
// transcription runs in the project directory. The log is informational:
// writes are best-effort and malformed lines are skipped on read.
package sessions
