package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/mizutanik/kindle2md/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	ConfigCmd.AddCommand(configGetCmd)
}

var configGetCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Read one setting by dotted path",
	Long: `Reads the setting at the given dotted path, checking the local layer
first, then the shared one. The value is printed as JSON.

Examples:
  kindle2md config get app.default_ocr_lang
  kindle2md config get capture.default_region
  kindle2md config get user_preferences.last_save_folder`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		ConfigLogger.Infof("Starting config get command")
		ConfigLogger.Debugf("Path: %s", path)

		store := openStore(configDirFlag, ConfigLogger)

		value := store.Get(path, nil)
		if value == nil {
			fmt.Println(ui.Warning.Sprint("⚠") + " " + ui.Code.Sprint(path) + " is not set")
			return nil
		}

		output, err := json.Marshal(value)
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to marshal value: %v", err)
		}
		fmt.Println(string(output))
		return nil
	},
}
