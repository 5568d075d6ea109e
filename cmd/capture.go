package cmd

import (
	logger "github.com/mizutanik/kindle2md/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	captureVerbose bool
	captureDebug   bool
	captureDir     string
	CaptureLogger  logger.Logger

	// CaptureCmd is the top-level capture command.
	CaptureCmd = &cobra.Command{
		Use:   "capture",
		Short: "Capture book pages from the reader window",
		Long: `Provides commands for screenshotting book pages out of the desktop
reader application and turning them into a Markdown transcript.

Use these commands to:
  - Run a full capture-and-transcribe session (capture run)
  - Inspect or change the screen region being captured (capture region)

Examples:
  # Capture 250 pages and transcribe them
  kindle2md capture run --pages 250

  # Capture without running OCR afterwards
  kindle2md capture run --pages 250 --skip-ocr

  # Show the region screenshots are taken from
  kindle2md capture region`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			CaptureLogger = logger.Logger{
				Verbose: captureVerbose,
				Debug:   captureDebug,
			}
			CaptureLogger.Debugf("Initializing capture command with verbose=%t, debug=%t", captureVerbose, captureDebug)
		},
	}
)

func init() {
	CaptureCmd.PersistentFlags().BoolVarP(&captureVerbose, "verbose", "v", false, "enable verbose output")
	CaptureCmd.PersistentFlags().BoolVarP(&captureDebug, "debug", "d", false, "enable debug output")
	CaptureCmd.PersistentFlags().StringVar(&captureDir, "dir", "", "project directory holding config.json (default: current directory)")
}

// GetCaptureCmd returns the CaptureCmd for testing.
func GetCaptureCmd() *cobra.Command {
	return CaptureCmd
}

// ResetCaptureState resets all capture command global variables to their default values for testing.
func ResetCaptureState() {
	captureVerbose = false
	captureDebug = false
	captureDir = ""
	resetCaptureRunState()
	resetCaptureRegionState()
	resetCaptureLogState()
	resetCaptureCobraFlagState()
}

// resetCaptureCobraFlagState resets the flag state for all capture commands to prevent test pollution.
func resetCaptureCobraFlagState() {
	if CaptureCmd != nil && CaptureCmd.Flags() != nil {
		CaptureCmd.Flags().VisitAll(func(flag *pflag.Flag) {
			flag.Changed = false
		})
	}
}
