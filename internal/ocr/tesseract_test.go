package ocr

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	kerrors "github.com/mizutanik/kindle2md/internal/errors"
)

func TestBuildArgs(t *testing.T) {
	transcriber := &Transcriber{Command: "tesseract", Args: []string{"--psm", "6"}}

	got := transcriber.buildArgs("page.png", "jpn+eng")
	want := []string{"page.png", "stdout", "-l", "jpn+eng", "--psm", "6"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("buildArgs() = %v, want %v", got, want)
	}
}

func TestBuildArgsOmitsEmptyLanguage(t *testing.T) {
	transcriber := &Transcriber{Command: "tesseract"}

	got := transcriber.buildArgs("page.png", "")
	want := []string{"page.png", "stdout"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("buildArgs() = %v, want %v", got, want)
	}
}

func TestImagesMissingFilesBecomePlaceholders(t *testing.T) {
	transcriber := &Transcriber{Command: "tesseract"}
	paths := []string{"/does/not/exist/a.png", "/does/not/exist/b.png"}

	var calls [][2]int
	doc, err := transcriber.Images(paths, "eng", func(page, total int) {
		calls = append(calls, [2]int{page, total})
	})
	if err != nil {
		t.Fatalf("Images() returned error: %v", err)
	}

	if !strings.Contains(doc, "## Page 1") || !strings.Contains(doc, "## Page 2") {
		t.Errorf("transcript missing page headings:\n%s", doc)
	}
	if strings.Index(doc, "## Page 1") > strings.Index(doc, "## Page 2") {
		t.Error("pages are out of order")
	}
	if !strings.Contains(doc, "_image file not found: /does/not/exist/a.png_") {
		t.Errorf("transcript missing placeholder for absent image:\n%s", doc)
	}
	if strings.Count(doc, "---") != 2 {
		t.Errorf("expected one horizontal rule per page, got %d", strings.Count(doc, "---"))
	}

	want := [][2]int{{1, 2}, {2, 2}}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("progress calls = %v, want %v", calls, want)
	}
}

func TestImagesEmptyInput(t *testing.T) {
	transcriber := &Transcriber{Command: "tesseract"}

	if _, err := transcriber.Images(nil, "eng", nil); !errors.Is(err, kerrors.ErrEmptyTranscript) {
		t.Errorf("Images(nil) error = %v, want ErrEmptyTranscript", err)
	}
}

func TestPageSectionTrimsTrailingNewlines(t *testing.T) {
	got := pageSection(3, "some text\n\n")
	want := "## Page 3\n\nsome text\n\n---\n"
	if got != want {
		t.Errorf("pageSection() = %q, want %q", got, want)
	}
}

func TestWriteMarkdownAddsTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.md")

	if err := WriteMarkdown(path, "## Page 1\n\nhello\n\n---"); err != nil {
		t.Fatalf("WriteMarkdown() returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read transcript: %v", err)
	}
	if !strings.HasSuffix(string(data), "---\n") {
		t.Errorf("transcript should end with a newline, got %q", string(data))
	}
}

func TestStatusWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.json")
	writer := &StatusWriter{Path: path}

	writer.Running(3, 10)

	var record struct {
		Page   int    `json:"page"`
		Total  int    `json:"total"`
		Status string `json:"status"`
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read status file: %v", err)
	}
	if err := json.Unmarshal(data, &record); err != nil {
		t.Fatalf("status file is not valid JSON: %v", err)
	}
	if record.Page != 3 || record.Total != 10 || record.Status != "running" {
		t.Errorf("status = %+v, want page 3 of 10 running", record)
	}

	writer.Done(10)
	data, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read status file: %v", err)
	}
	if err := json.Unmarshal(data, &record); err != nil {
		t.Fatalf("status file is not valid JSON: %v", err)
	}
	if record.Page != 10 || record.Status != "done" {
		t.Errorf("status = %+v, want page 10 of 10 done", record)
	}
}

func TestStatusWriterNilSafe(t *testing.T) {
	var writer *StatusWriter
	writer.Running(1, 2)
	writer.Done(2)

	empty := &StatusWriter{}
	empty.Running(1, 2)
	empty.Done(2)
}
