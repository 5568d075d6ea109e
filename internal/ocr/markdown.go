package ocr

import (
	"fmt"
	"os"
	"strings"

	"github.com/mizutanik/kindle2md/internal/ui"
)

// pageSection renders one page of recognized text as a Markdown section,
// closed with a horizontal rule so pages stay visually separated.
func pageSection(page int, text string) string {
	return fmt.Sprintf("## Page %d\n\n%s\n\n---\n", page, strings.TrimRight(text, "\n"))
}

func joinSections(sections []string) string {
	return strings.Join(sections, "\n")
}

// WriteMarkdown writes the transcript to path as UTF-8 with a trailing
// newline, overwriting any existing file.
func WriteMarkdown(path, doc string) error {
	if err := os.WriteFile(path, []byte(ui.EnsureNewline(doc)), 0644); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	return nil
}
