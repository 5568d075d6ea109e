package cmd

import (
	"fmt"
	"time"

	"github.com/mizutanik/kindle2md/internal/ui"
	"github.com/mizutanik/kindle2md/internal/utils"
	"github.com/spf13/cobra"
)

func init() {
	ConfigCmd.AddCommand(configRecentCmd)
}

var configRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently captured books",
	Long: `Lists the recently captured books recorded in config.local.json, most
recent first. The list is updated after every capture session and holds at
most ten entries; capturing a book again moves it to the top.

Examples:
  kindle2md config recent`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config recent command")

		store := openStore(configDirFlag, ConfigLogger)

		projects := store.RecentProjects()
		ConfigLogger.Infof("Found %d recent projects", len(projects))
		if len(projects) == 0 {
			fmt.Println(ui.Warning.Sprint("⚠") + " No captured books yet")
			fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("kindle2md capture run") + " to capture one")
			return nil
		}

		fmt.Print("Recently captured books:\n\n")
		for i, project := range projects {
			capturedDisplay := ""
			if captured, err := time.Parse(time.RFC3339, project.CapturedAt); err == nil {
				capturedDisplay = " - " + captured.Format("Jan 2, 2006")
			}
			fmt.Printf("  %2d. %s%s\n", i+1, ui.Highlight.Sprint(utils.TruncateString(project.Title, 60)), ui.Muted.Sprint(capturedDisplay))
			if project.Folder != "" {
				detail := project.Folder
				if project.Pages > 0 {
					detail = fmt.Sprintf("%s (%d pages", project.Folder, project.Pages)
					if project.Language != "" {
						detail += ", " + project.Language
					}
					detail += ")"
				}
				fmt.Printf("      %s\n", ui.Muted.Sprint(detail))
			}
		}
		return nil
	},
}
