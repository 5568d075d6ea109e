package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/mizutanik/kindle2md/internal/capture"
	"github.com/mizutanik/kindle2md/internal/configs"
	kerrors "github.com/mizutanik/kindle2md/internal/errors"
	"github.com/mizutanik/kindle2md/internal/ocr"
	"github.com/mizutanik/kindle2md/internal/sessions"
	"github.com/mizutanik/kindle2md/internal/ui"
	"github.com/mizutanik/kindle2md/internal/utils"
	"github.com/mizutanik/kindle2md/internal/window"
	"github.com/spf13/cobra"
)

var (
	runPages      int
	runFolder     string
	runRegion     string
	runKey        string
	runLang       string
	runTitle      string
	runOutput     string
	runStatusFile string
	runDelay      time.Duration
	runSkipOCR    bool
	runClean      bool
)

func init() {
	captureRunCmd.Flags().IntVarP(&runPages, "pages", "n", 0, "number of pages to capture (default: app.default_pages)")
	captureRunCmd.Flags().StringVarP(&runFolder, "folder", "f", "", "folder to save screenshots into (default: remembered save folder)")
	captureRunCmd.Flags().StringVar(&runRegion, "region", "", "capture region as x,y,width,height (default: remembered region)")
	captureRunCmd.Flags().StringVarP(&runKey, "key", "k", "", "page turn key: right, left, pagedown, pageup, space, enter")
	captureRunCmd.Flags().StringVarP(&runLang, "lang", "l", "", "OCR language string, e.g. jpn+eng (default: app.default_ocr_lang)")
	captureRunCmd.Flags().StringVarP(&runTitle, "title", "t", "", "book title recorded in the recent project list (default: folder name)")
	captureRunCmd.Flags().StringVarP(&runOutput, "output", "o", "", "transcript path (default: output.md inside the save folder)")
	captureRunCmd.Flags().StringVar(&runStatusFile, "status-file", "", "write OCR progress to this JSON file")
	captureRunCmd.Flags().DurationVar(&runDelay, "delay", 800*time.Millisecond, "pause between page turn and next screenshot")
	captureRunCmd.Flags().BoolVar(&runSkipOCR, "skip-ocr", false, "capture screenshots only, do not transcribe")
	captureRunCmd.Flags().BoolVar(&runClean, "clean", false, "delete screenshots after a successful transcription")
	CaptureCmd.AddCommand(captureRunCmd)
}

// resetCaptureRunState resets the capture run command's global state for testing.
func resetCaptureRunState() {
	runPages = 0
	runFolder = ""
	runRegion = ""
	runKey = ""
	runLang = ""
	runTitle = ""
	runOutput = ""
	runStatusFile = ""
	runDelay = 800 * time.Millisecond
	runSkipOCR = false
	runClean = false
}

var captureRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Capture pages and transcribe them to Markdown",
	Long: `Runs a full capture session: brings the reader window to the front,
screenshots the configured region once per page, turns the page, and finally
feeds the screenshots through OCR into a single Markdown transcript.

Flags override the stored configuration; anything not given comes from
config.json and config.local.json in the project directory. The region and
save folder that were actually used are remembered for the next run.

Examples:
  # Capture 250 pages with the remembered region and folder
  kindle2md capture run --pages 250

  # Capture a Japanese vertical-text book into a specific folder
  kindle2md capture run --pages 180 --lang jpn+jpn_vert --folder ~/books/soseki

  # Screenshots only, no OCR
  kindle2md capture run --pages 50 --skip-ocr`,
	RunE: func(cmd *cobra.Command, args []string) error {
		CaptureLogger.Infof("Starting capture run command")
		store := openStore(captureDir, CaptureLogger)

		region := store.CaptureRegion()
		if runRegion != "" {
			parsed, err := parseRegionFlag(runRegion)
			if err != nil {
				return CaptureLogger.ErrorfAndReturn("Invalid --region: %v", err)
			}
			region = parsed
		}

		folder := runFolder
		if folder == "" {
			folder = store.SaveFolder()
		}

		pages := runPages
		if pages <= 0 {
			pages = store.GetInt("app.default_pages", 100)
		}

		keyName := runKey
		if keyName == "" {
			keyName = store.GetString("app.default_page_key", "right")
		}
		key, ok := window.NormalizeKey(keyName)
		if !ok {
			return CaptureLogger.ErrorfAndReturn("Unknown page turn key %q: %v", keyName, kerrors.ErrUnknownKey)
		}

		lang := runLang
		if lang == "" {
			lang = store.GetString("app.default_ocr_lang", "eng")
		}

		CaptureLogger.Debugf("Session: pages=%d folder=%s region=%+v key=%s lang=%s", pages, folder, region, key, lang)

		if err := utils.EnsureDir(folder); err != nil {
			return CaptureLogger.ErrorfAndReturn("Failed to create save folder: %v", err)
		}

		spinner, cleanup := startSpinnerWithFlags("Activating reader window...", captureVerbose, captureDebug)
		defer cleanup()

		keyword := store.GetString("app.window_keyword", "Kindle for PC")
		CaptureLogger.Debugf("Activating window matching %q", keyword)
		if err := window.Activate(keyword); err != nil {
			if errors.Is(err, kerrors.ErrWindowNotFound) {
				spinner.FinalMSG = ui.Error.Sprint("✗") + " No window matching " + ui.Highlight.Sprint(keyword) + " found\n" +
					ui.Info.Sprint("→") + " Open the reader application and try again"
				return nil
			}
			if errors.Is(err, kerrors.ErrActivatorUnavailable) {
				spinner.FinalMSG = ui.Error.Sprint("✗") + " Cannot control windows on this machine\n" +
					ui.Info.Sprint("→") + " " + err.Error()
				return nil
			}
			return CaptureLogger.ErrorfAndReturn("Failed to activate reader window: %v", err)
		}

		format := store.GetString("capture.filename_format", "screenshot_%04d.png")
		captured := make([]string, 0, pages)
		for page := 1; page <= pages; page++ {
			spinner.Suffix = fmt.Sprintf(" Capturing page %d of %d...", page, pages)
			CaptureLogger.Debugf("Capturing page %d", page)

			// A failed page stays in the list so OCR emits a placeholder
			// section for it and page numbering keeps tracking the book.
			path := filepath.Join(folder, capture.Filename(format, page))
			if img, err := capture.CaptureRegion(region); err != nil {
				CaptureLogger.WarnfAlways("Failed to capture page %d, continuing: %v", page, err)
			} else if err := capture.SaveImage(img, path); err != nil {
				CaptureLogger.WarnfAlways("Failed to save page %d, continuing: %v", page, err)
			}
			captured = append(captured, path)

			if page < pages {
				if err := window.PageTurn(key); err != nil {
					return CaptureLogger.ErrorfAndReturn("Failed to turn page after page %d: %v", page, err)
				}
				time.Sleep(runDelay)
			}
		}

		CaptureLogger.Infof("Captured %d pages into %s", len(captured), folder)
		CaptureLogger.Debugf("Captured files:%s", utils.FormatPaths(captured))

		// Remember the session settings for next time.
		if err := store.SetCaptureRegion(region.X, region.Y, region.Width, region.Height); err != nil {
			CaptureLogger.Warnf("Could not remember capture region: %v", err)
		}
		if err := store.SetSaveFolder(folder); err != nil {
			CaptureLogger.Warnf("Could not remember save folder: %v", err)
		}

		outputPath := ""
		if !runSkipOCR {
			transcriber, err := ocr.NewTranscriber(store, CaptureLogger)
			if err != nil {
				if errors.Is(err, kerrors.ErrTesseractNotFound) {
					spinner.FinalMSG = ui.Error.Sprint("✗") + " tesseract not found, screenshots were kept\n" +
						ui.Info.Sprint("→") + " Install tesseract or set " + ui.Code.Sprint("paths.tesseract_cmd") + " in " + ui.Path.Sprint(configs.LocalConfigFile)
					return nil
				}
				return CaptureLogger.ErrorfAndReturn("Failed to set up OCR: %v", err)
			}

			status := &ocr.StatusWriter{Path: runStatusFile}
			doc, err := transcriber.Images(captured, lang, func(page, total int) {
				spinner.Suffix = fmt.Sprintf(" Transcribing page %d of %d...", page, total)
				status.Running(page, total)
			})
			if err != nil {
				return CaptureLogger.ErrorfAndReturn("Transcription failed: %v", err)
			}

			outputPath = runOutput
			if outputPath == "" {
				outputPath = filepath.Join(folder, "output.md")
			}
			if err := ocr.WriteMarkdown(outputPath, doc); err != nil {
				return CaptureLogger.ErrorfAndReturn("Failed to write transcript: %v", err)
			}
			status.Done(len(captured))
			CaptureLogger.Infof("Transcript written to %s", outputPath)
		}

		title := runTitle
		if title == "" {
			title = filepath.Base(folder)
		}
		if err := store.AddRecentProject(configs.Project{
			Title:      title,
			Folder:     folder,
			OutputFile: outputPath,
			Pages:      len(captured),
			Language:   lang,
		}); err != nil {
			CaptureLogger.Warnf("Could not update recent projects: %v", err)
		}

		removed := 0
		if runClean && outputPath != "" {
			removed = capture.RemoveFiles(captured)
			CaptureLogger.Infof("Removed %d screenshots", removed)
		}

		sessions.Log(store.BaseDir, sessions.Entry{
			Operation:    "capture",
			Title:        title,
			Folder:       folder,
			OutputFile:   outputPath,
			Pages:        len(captured),
			Language:     lang,
			RemovedCount: removed,
		})

		finalMessage := ui.Success.Sprint("✓") + fmt.Sprintf(" Captured %d pages into ", len(captured)) + ui.Path.Sprint(folder)
		if outputPath != "" {
			finalMessage += "\n" + ui.Info.Sprint("→") + " Transcript: " + ui.Path.Sprint(outputPath)
		} else {
			finalMessage += "\n" + ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("kindle2md transcribe folder "+folder) + " to transcribe later"
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}
