package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mizutanik/kindle2md/internal/sessions"
	"github.com/mizutanik/kindle2md/internal/ui"
	"github.com/spf13/cobra"
)

var (
	captureLogLimit   int
	captureLogReverse bool
	captureLogJSON    bool
)

func init() {
	captureLogCmd.Flags().IntVarP(&captureLogLimit, "number", "n", 0, "limit number of entries shown")
	captureLogCmd.Flags().BoolVar(&captureLogReverse, "reverse", false, "show most recent entries first")
	captureLogCmd.Flags().BoolVar(&captureLogJSON, "json", false, "output as JSON array")
	CaptureCmd.AddCommand(captureLogCmd)
}

// resetCaptureLogState resets the capture log command's global state for testing.
func resetCaptureLogState() {
	captureLogLimit = 0
	captureLogReverse = false
	captureLogJSON = false
}

var captureLogCmd = &cobra.Command{
	Use:   "log",
	Short: "View the session history",
	Long: `Displays the history of capture and transcription sessions recorded in
sessions.jsonl in the project directory.

Examples:
  kindle2md capture log              # View full history
  kindle2md capture log -n 10        # Last 10 entries
  kindle2md capture log --reverse    # Most recent first
  kindle2md capture log --json       # JSON output`,
	RunE: func(cmd *cobra.Command, args []string) error {
		CaptureLogger.Infof("Starting capture log command")

		store := openStore(captureDir, CaptureLogger)
		entries, err := sessions.ReadEntries(store.BaseDir)
		if err != nil {
			return CaptureLogger.ErrorfAndReturn("Failed to read session log: %v", err)
		}
		CaptureLogger.Debugf("Parsed %d entries from session log", len(entries))

		if len(entries) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		if captureLogReverse {
			for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
				entries[i], entries[j] = entries[j], entries[i]
			}
		}
		if captureLogLimit > 0 && len(entries) > captureLogLimit {
			entries = entries[:captureLogLimit]
		}

		if captureLogJSON {
			data, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return CaptureLogger.ErrorfAndReturn("Failed to marshal entries to JSON: %v", err)
			}
			fmt.Println(string(data))
			return nil
		}

		for _, e := range entries {
			datetime := e.Timestamp
			if ts, err := time.Parse("2006-01-02T15:04:05.000000Z", e.Timestamp); err == nil {
				datetime = ts.Format("2006-01-02 15:04:05")
			}
			details := e.Title
			if e.Pages > 0 {
				details += fmt.Sprintf(" (%d pages", e.Pages)
				if e.Language != "" {
					details += ", " + e.Language
				}
				details += ")"
			}
			if details == "" {
				details = e.Folder
			}
			fmt.Printf("%-19s  %-10s  %s\n", datetime, e.Operation, ui.Highlight.Sprint(details))
		}
		return nil
	},
}
