package sessions

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// LogFile is the session log's file name inside the project directory.
const LogFile = "sessions.jsonl"

// Entry represents a single session log entry.
type Entry struct {
	Timestamp string `json:"ts"` // RFC3339 with microseconds.
	Operation string `json:"op"` // "capture" or "transcribe".

	// Optional fields depending on operation.
	Title        string `json:"title,omitempty"`
	Folder       string `json:"folder,omitempty"`
	OutputFile   string `json:"output_file,omitempty"`
	Pages        int    `json:"pages,omitempty"`
	Language     string `json:"language,omitempty"`
	RemovedCount int    `json:"removed_count,omitempty"` // For --clean runs.
}

// Log appends an entry to the session log in baseDir.
// If logging fails it simply returns; a capture session should not fail
// just because its history could not be recorded.
func Log(baseDir string, entry Entry) {
	if baseDir == "" {
		return
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	f, err := os.OpenFile(LogPath(baseDir), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	_, _ = f.Write(append(data, '\n'))
}

// LogPath returns the path to the session log file in baseDir.
func LogPath(baseDir string) string {
	return filepath.Join(baseDir, LogFile)
}

// ReadEntries reads all entries from the session log in baseDir.
// Returns an empty slice if the log doesn't exist.
func ReadEntries(baseDir string) ([]Entry, error) {
	data, err := os.ReadFile(LogPath(baseDir))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into session entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				// Skip malformed entries.
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
