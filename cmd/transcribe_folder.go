package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	kerrors "github.com/mizutanik/kindle2md/internal/errors"
	"github.com/mizutanik/kindle2md/internal/ocr"
	"github.com/mizutanik/kindle2md/internal/sessions"
	"github.com/mizutanik/kindle2md/internal/ui"
	"github.com/spf13/cobra"
)

var (
	folderLang       string
	folderOutput     string
	folderStatusFile string
)

func init() {
	transcribeFolderCmd.Flags().StringVarP(&folderLang, "lang", "l", "", "OCR language string, e.g. jpn+eng (default: app.default_ocr_lang)")
	transcribeFolderCmd.Flags().StringVarP(&folderOutput, "output", "o", "", "transcript path (default: output.md inside the folder)")
	transcribeFolderCmd.Flags().StringVar(&folderStatusFile, "status-file", "", "write OCR progress to this JSON file")
	TranscribeCmd.AddCommand(transcribeFolderCmd)
}

// resetTranscribeFolderState resets the transcribe folder command's global state for testing.
func resetTranscribeFolderState() {
	folderLang = ""
	folderOutput = ""
	folderStatusFile = ""
}

var transcribeFolderCmd = &cobra.Command{
	Use:   "folder <directory>",
	Short: "Transcribe every image in a folder",
	Long: `Runs OCR over every image directly inside the given folder, in file
name order, and writes a single Markdown transcript with one section per
page. Images that cannot be read become placeholder sections so one bad
page never loses the rest of the book.

Examples:
  # Transcribe with stored defaults
  kindle2md transcribe folder ~/books/soseki

  # Japanese vertical text to a custom file, with progress for a watcher
  kindle2md transcribe folder ~/books/soseki --lang jpn+jpn_vert --output soseki.md --status-file /tmp/ocr.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		folder := args[0]
		TranscribeLogger.Infof("Starting transcribe folder command")
		TranscribeLogger.Debugf("Flags: folder=%s lang=%s output=%s", folder, folderLang, folderOutput)

		store := openStore(transcribeDir, TranscribeLogger)

		lang := folderLang
		if lang == "" {
			lang = store.GetString("app.default_ocr_lang", "eng")
		}

		spinner, cleanup := startSpinnerWithFlags("Preparing OCR...", transcribeVerbose, transcribeDebug)
		defer cleanup()

		transcriber, err := ocr.NewTranscriber(store, TranscribeLogger)
		if err != nil {
			if errors.Is(err, kerrors.ErrTesseractNotFound) {
				spinner.FinalMSG = ui.Error.Sprint("✗") + " tesseract not found\n" +
					ui.Info.Sprint("→") + " Install tesseract or set " + ui.Code.Sprint("paths.tesseract_cmd") + " in the local config"
				return nil
			}
			return TranscribeLogger.ErrorfAndReturn("Failed to set up OCR: %v", err)
		}

		status := &ocr.StatusWriter{Path: folderStatusFile}
		pageCount := 0
		doc, err := transcriber.Folder(folder, lang, func(page, total int) {
			spinner.Suffix = fmt.Sprintf(" Transcribing page %d of %d...", page, total)
			status.Running(page, total)
			pageCount = total
		})
		if err != nil {
			if errors.Is(err, kerrors.ErrNoImagesFound) {
				spinner.FinalMSG = ui.Warning.Sprint("⚠") + " No images found in " + ui.Path.Sprint(folder)
				return nil
			}
			return TranscribeLogger.ErrorfAndReturn("Transcription failed: %v", err)
		}

		outputPath := folderOutput
		if outputPath == "" {
			outputPath = filepath.Join(folder, "output.md")
		}
		if err := ocr.WriteMarkdown(outputPath, doc); err != nil {
			return TranscribeLogger.ErrorfAndReturn("Failed to write transcript: %v", err)
		}
		status.Done(pageCount)

		sessions.Log(store.BaseDir, sessions.Entry{
			Operation:  "transcribe",
			Folder:     folder,
			OutputFile: outputPath,
			Pages:      pageCount,
			Language:   lang,
		})

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Transcript written to " + ui.Path.Sprint(outputPath)
		return nil
	},
}
