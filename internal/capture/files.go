package capture

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	kerrors "github.com/mizutanik/kindle2md/internal/errors"
)

// imagePatterns matches the file types the OCR engine accepts. Matching is
// done against lowercased names, so SCREENSHOT_0001.PNG is picked up too.
var imagePatterns = []string{"*.png", "*.jpg", "*.jpeg", "*.bmp", "*.tif", "*.tiff"}

// Filename renders the screenshot filename for a 1-based page number. The
// format carries one integer placeholder, e.g. "screenshot_%04d.png"; a
// format without a verb falls back to the default so a bad config value
// cannot make every page overwrite the same file.
func Filename(format string, page int) string {
	if !strings.Contains(format, "%") {
		format = "screenshot_%04d.png"
	}
	return fmt.Sprintf(format, page)
}

// ListImages returns the image files directly inside folder, sorted by name
// so page order follows the zero-padded capture numbering.
func ListImages(folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %s: %w", folder, err)
	}

	var images []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := strings.ToLower(entry.Name())
		for _, pattern := range imagePatterns {
			if ok, _ := doublestar.Match(pattern, name); ok {
				images = append(images, filepath.Join(folder, entry.Name()))
				break
			}
		}
	}

	if len(images) == 0 {
		return nil, kerrors.ErrNoImagesFound
	}
	sort.Strings(images)
	return images, nil
}

// RemoveFiles deletes the given files, skipping anything that is not a
// regular file. Returns how many were removed; individual failures are
// ignored, cleanup is best-effort.
func RemoveFiles(paths []string) int {
	removed := 0
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		if os.Remove(path) == nil {
			removed++
		}
	}
	return removed
}
