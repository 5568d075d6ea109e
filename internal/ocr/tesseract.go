package ocr

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/mizutanik/kindle2md/internal/capture"
	"github.com/mizutanik/kindle2md/internal/configs"
	kerrors "github.com/mizutanik/kindle2md/internal/errors"
	logger "github.com/mizutanik/kindle2md/internal/logging"
	"github.com/mizutanik/kindle2md/internal/utils"
)

// ProgressFunc is called after each page is transcribed.
type ProgressFunc func(page, total int)

// Transcriber runs the tesseract engine over page images and assembles the
// Markdown transcript. One engine invocation per image; a page that cannot
// be read becomes a placeholder section rather than aborting the run.
type Transcriber struct {
	Command string
	Args    []string
	Logger  logger.Logger
}

// NewTranscriber resolves the tesseract binary from the config store: the
// configured paths.tesseract_cmd when it exists on disk, otherwise a PATH
// lookup. Engine arguments come from ocr.tesseract_config.
func NewTranscriber(store *configs.Store, log logger.Logger) (*Transcriber, error) {
	command := store.GetString("paths.tesseract_cmd", "")
	if !utils.PathExists(command) {
		path, err := exec.LookPath("tesseract")
		if err != nil {
			return nil, fmt.Errorf("%w: install tesseract or set paths.tesseract_cmd in %s",
				kerrors.ErrTesseractNotFound, configs.LocalConfigFile)
		}
		command = path
	}

	return &Transcriber{
		Command: command,
		Args:    strings.Fields(store.GetString("ocr.tesseract_config", "")),
		Logger:  log,
	}, nil
}

// Images transcribes the given image files in order and returns the
// assembled Markdown document. Missing files and engine failures produce
// placeholder sections; progress (when non-nil) is reported after every
// page either way.
func (t *Transcriber) Images(paths []string, lang string, progress ProgressFunc) (string, error) {
	total := len(paths)
	if total == 0 {
		return "", kerrors.ErrEmptyTranscript
	}

	sections := make([]string, 0, total)
	for i, path := range paths {
		page := i + 1

		var text string
		if _, err := os.Stat(path); err != nil {
			t.Logger.Warnf("Image for page %d not found: %s", page, path)
			text = fmt.Sprintf("_image file not found: %s_", path)
		} else if recognized, err := t.recognize(path, lang); err != nil {
			t.Logger.Warnf("OCR failed for page %d: %v", page, err)
			text = fmt.Sprintf("_ocr failed for %s_", path)
		} else {
			text = recognized
		}

		sections = append(sections, pageSection(page, text))
		if progress != nil {
			progress(page, total)
		}
	}

	return joinSections(sections), nil
}

// Folder transcribes every image directly inside folder, in name order.
func (t *Transcriber) Folder(folder, lang string, progress ProgressFunc) (string, error) {
	images, err := capture.ListImages(folder)
	if err != nil {
		return "", err
	}
	return t.Images(images, lang, progress)
}

// buildArgs assembles the tesseract command line for one image. Output goes
// to stdout; engine options like --psm follow the language.
func (t *Transcriber) buildArgs(imagePath, lang string) []string {
	args := []string{imagePath, "stdout"}
	if lang != "" {
		args = append(args, "-l", lang)
	}
	return append(args, t.Args...)
}

func (t *Transcriber) recognize(imagePath, lang string) (string, error) {
	cmd := exec.Command(t.Command, t.buildArgs(imagePath, lang)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return "", fmt.Errorf("tesseract failed: %v (%s)", err, firstLine(detail))
		}
		return "", fmt.Errorf("tesseract failed: %w", err)
	}
	return string(out), nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
