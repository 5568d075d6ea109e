package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/mizutanik/kindle2md/internal/configs"
	"github.com/mizutanik/kindle2md/internal/ui"
	"github.com/spf13/cobra"
)

var configSetShared bool

func init() {
	configSetCmd.Flags().BoolVar(&configSetShared, "shared", false, "write to the shared config.json instead of config.local.json")
	ConfigCmd.AddCommand(configSetCmd)
}

// resetConfigSetState resets the config set command's global state for testing.
func resetConfigSetState() {
	configSetShared = false
}

var configSetCmd = &cobra.Command{
	Use:   "set <path> <value>",
	Short: "Write one setting by dotted path",
	Long: `Writes the setting at the given dotted path and saves the file.
Values are parsed as JSON, so numbers, booleans, arrays, and objects all
work; anything that is not valid JSON is stored as a plain string.

By default the machine-local config.local.json is written; --shared writes
the version-controlled config.json instead. Intermediate objects along the
path are created as needed.

Examples:
  kindle2md config set user_preferences.last_save_folder ~/books
  kindle2md config set app.default_pages 250 --shared
  kindle2md config set ocr.tesseract_config '"--psm 5"' --shared`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, raw := args[0], args[1]
		ConfigLogger.Infof("Starting config set command")
		ConfigLogger.Debugf("Path: %s, value: %s, shared: %t", path, raw, configSetShared)

		store := openStore(configDirFlag, ConfigLogger)

		// JSON first, plain string as the fallback.
		var value any
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			value = raw
		}

		file := configs.LocalConfigFile
		if configSetShared {
			store.SetShared(path, value)
			if err := store.SaveSharedConfig(); err != nil {
				return ConfigLogger.ErrorfAndReturn("Failed to save %s: %v", configs.SharedConfigFile, err)
			}
			file = configs.SharedConfigFile
		} else {
			store.SetLocal(path, value)
			if err := store.SaveLocalConfig(); err != nil {
				return ConfigLogger.ErrorfAndReturn("Failed to save %s: %v", configs.LocalConfigFile, err)
			}
		}

		fmt.Printf("%s Set %s in %s\n", ui.Success.Sprint("✓"), ui.Code.Sprint(path), ui.Path.Sprint(file))
		return nil
	},
}
