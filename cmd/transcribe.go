package cmd

import (
	logger "github.com/mizutanik/kindle2md/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	transcribeVerbose bool
	transcribeDebug   bool
	transcribeDir     string
	TranscribeLogger  logger.Logger

	// TranscribeCmd is the top-level transcribe command.
	TranscribeCmd = &cobra.Command{
		Use:   "transcribe",
		Short: "Turn captured screenshots into Markdown",
		Long: `Provides commands for running OCR over already-captured screenshots,
independently of a capture session.

Examples:
  # Transcribe every image in a folder
  kindle2md transcribe folder ~/books/soseki

  # Transcribe with an explicit language and output file
  kindle2md transcribe folder ~/books/soseki --lang jpn+jpn_vert --output soseki.md`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			TranscribeLogger = logger.Logger{
				Verbose: transcribeVerbose,
				Debug:   transcribeDebug,
			}
			TranscribeLogger.Debugf("Initializing transcribe command with verbose=%t, debug=%t", transcribeVerbose, transcribeDebug)
		},
	}
)

func init() {
	TranscribeCmd.PersistentFlags().BoolVarP(&transcribeVerbose, "verbose", "v", false, "enable verbose output")
	TranscribeCmd.PersistentFlags().BoolVarP(&transcribeDebug, "debug", "d", false, "enable debug output")
	TranscribeCmd.PersistentFlags().StringVar(&transcribeDir, "dir", "", "project directory holding config.json (default: current directory)")
}

// GetTranscribeCmd returns the TranscribeCmd for testing.
func GetTranscribeCmd() *cobra.Command {
	return TranscribeCmd
}

// ResetTranscribeState resets all transcribe command global variables to their default values for testing.
func ResetTranscribeState() {
	transcribeVerbose = false
	transcribeDebug = false
	transcribeDir = ""
	resetTranscribeFolderState()
	resetTranscribeCobraFlagState()
}

// resetTranscribeCobraFlagState resets the flag state for all transcribe commands to prevent test pollution.
func resetTranscribeCobraFlagState() {
	if TranscribeCmd != nil && TranscribeCmd.Flags() != nil {
		TranscribeCmd.Flags().VisitAll(func(flag *pflag.Flag) {
			flag.Changed = false
		})
	}
}
