package ocr

import (
	"encoding/json"
	"os"
)

// StatusWriter reports per-page OCR progress to a small JSON file
// ({"page":N,"total":T,"status":"running"|"done"}) so another process can
// poll a long transcription. Writes are best-effort: a failed status write
// never interrupts the OCR run. A nil writer or empty path is a no-op.
type StatusWriter struct {
	Path string
}

type statusRecord struct {
	Page   int    `json:"page"`
	Total  int    `json:"total"`
	Status string `json:"status"`
}

// Running records that the given page is being processed.
func (w *StatusWriter) Running(page, total int) {
	w.write(statusRecord{Page: page, Total: total, Status: "running"})
}

// Done records a finished run.
func (w *StatusWriter) Done(total int) {
	w.write(statusRecord{Page: total, Total: total, Status: "done"})
}

func (w *StatusWriter) write(record statusRecord) {
	if w == nil || w.Path == "" {
		return
	}
	data, err := json.Marshal(record)
	if err != nil {
		return
	}
	_ = os.WriteFile(w.Path, data, 0644)
}
