package capture

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mizutanik/kindle2md/internal/configs"
	kerrors "github.com/mizutanik/kindle2md/internal/errors"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		name   string
		format string
		page   int
		want   string
	}{
		{"zero padded", "screenshot_%04d.png", 7, "screenshot_0007.png"},
		{"four digits", "screenshot_%04d.png", 1234, "screenshot_1234.png"},
		{"custom format", "page-%d.png", 3, "page-3.png"},
		{"format without verb falls back", "broken.png", 2, "screenshot_0002.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filename(tt.format, tt.page); got != tt.want {
				t.Errorf("Filename(%q, %d) = %q, want %q", tt.format, tt.page, got, tt.want)
			}
		})
	}
}

func TestListImagesSortedAndFiltered(t *testing.T) {
	tempDir := t.TempDir()
	for _, name := range []string{
		"screenshot_0002.png",
		"screenshot_0001.png",
		"SCREENSHOT_0003.PNG",
		"notes.txt",
		"cover.jpeg",
	} {
		if err := os.WriteFile(filepath.Join(tempDir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to write fixture: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(tempDir, "nested.png"), 0755); err != nil {
		t.Fatalf("Failed to create decoy dir: %v", err)
	}

	images, err := ListImages(tempDir)
	if err != nil {
		t.Fatalf("ListImages failed: %v", err)
	}

	want := []string{
		filepath.Join(tempDir, "SCREENSHOT_0003.PNG"),
		filepath.Join(tempDir, "cover.jpeg"),
		filepath.Join(tempDir, "screenshot_0001.png"),
		filepath.Join(tempDir, "screenshot_0002.png"),
	}
	if len(images) != len(want) {
		t.Fatalf("Expected %d images, got %d: %v", len(want), len(images), images)
	}
	for i, path := range want {
		if images[i] != path {
			t.Errorf("images[%d] = %q, want %q", i, images[i], path)
		}
	}
}

func TestListImagesEmptyFolder(t *testing.T) {
	_, err := ListImages(t.TempDir())
	if !errors.Is(err, kerrors.ErrNoImagesFound) {
		t.Errorf("Expected ErrNoImagesFound, got %v", err)
	}
}

func TestRemoveFiles(t *testing.T) {
	tempDir := t.TempDir()
	keep := filepath.Join(tempDir, "keep")
	if err := os.Mkdir(keep, 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}

	var paths []string
	for _, name := range []string{"a.png", "b.png"} {
		path := filepath.Join(tempDir, name)
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to write fixture: %v", err)
		}
		paths = append(paths, path)
	}
	paths = append(paths, filepath.Join(tempDir, "missing.png"), keep)

	if removed := RemoveFiles(paths); removed != 2 {
		t.Errorf("Expected 2 files removed, got %d", removed)
	}
	if _, err := os.Stat(keep); err != nil {
		t.Error("Expected directory to be left alone")
	}
}

func TestCaptureRegionRejectsInvalidRegion(t *testing.T) {
	_, err := CaptureRegion(configs.Region{Width: 0, Height: 100})
	if !errors.Is(err, kerrors.ErrInvalidRegion) {
		t.Errorf("Expected ErrInvalidRegion for zero width, got %v", err)
	}

	_, err = CaptureRegion(configs.Region{X: 10, Y: 10, Width: 800, Height: -1})
	if !errors.Is(err, kerrors.ErrInvalidRegion) {
		t.Errorf("Expected ErrInvalidRegion for negative height, got %v", err)
	}
}
