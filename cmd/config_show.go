package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/mizutanik/kindle2md/internal/configs"
	"github.com/mizutanik/kindle2md/internal/ui"
	"github.com/spf13/cobra"
)

var (
	configShowShared bool
	configShowLocal  bool
	configShowJSON   bool
)

func init() {
	configShowCmd.Flags().BoolVar(&configShowShared, "shared", false, "show only the shared config.json layer")
	configShowCmd.Flags().BoolVar(&configShowLocal, "local", false, "show only the machine-local config.local.json layer")
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output the document only, without headers")
	ConfigCmd.AddCommand(configShowCmd)
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowShared = false
	configShowLocal = false
	configShowJSON = false
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the current configuration",
	Long: `Displays the effective configuration: the machine-local layer merged
over the shared one, defaults filling in anything missing from both.

Use --shared or --local to inspect a single layer instead. A layer whose
file was unreadable or malformed is flagged; the tool keeps running on
built-in defaults in that case.

Examples:
  # Show the effective configuration
  kindle2md config show

  # Show only what is in config.local.json
  kindle2md config show --local

  # Machine-readable output
  kindle2md config show --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config show command")
		ConfigLogger.Debugf("Flags: shared=%t, local=%t, json=%t", configShowShared, configShowLocal, configShowJSON)

		store := openStore(configDirFlag, ConfigLogger)

		var doc map[string]any
		switch {
		case configShowShared:
			doc = store.SharedDocument()
		case configShowLocal:
			doc = store.LocalDocument()
		default:
			doc = store.MergedDocument()
		}

		output, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to marshal config to JSON: %v", err)
		}

		if configShowJSON {
			fmt.Println(string(output))
			return nil
		}

		switch {
		case configShowShared:
			fmt.Println(ui.Highlight.Sprint("Shared configuration") + " (" + ui.Path.Sprint(store.SharedPath) + "):")
			printLayerStatus(configs.SharedConfigFile, store.SharedStatus)
		case configShowLocal:
			fmt.Println(ui.Highlight.Sprint("Local configuration") + " (" + ui.Path.Sprint(store.LocalPath) + "):")
			printLayerStatus(configs.LocalConfigFile, store.LocalStatus)
		default:
			fmt.Println(ui.Highlight.Sprint("Effective configuration") + " (local over shared over defaults):")
			printLayerStatus(configs.SharedConfigFile, store.SharedStatus)
			printLayerStatus(configs.LocalConfigFile, store.LocalStatus)
		}
		fmt.Println()
		fmt.Println(string(output))
		return nil
	},
}

// printLayerStatus reports where one config layer came from, flagging a layer
// that degraded to defaults because its file could not be used.
func printLayerStatus(name string, status configs.LayerStatus) {
	if status.Err != nil {
		fmt.Printf("  %s %s unusable, using built-in defaults: %v\n", ui.Warning.Sprint("⚠"), ui.Path.Sprint(name), status.Err)
		return
	}
	fmt.Printf("  %s %s: %s\n", ui.Info.Sprint("→"), ui.Path.Sprint(name), ui.Muted.Sprint(status.Source.String()))
}
