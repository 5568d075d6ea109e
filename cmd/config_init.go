package cmd

import (
	"fmt"

	"github.com/mizutanik/kindle2md/internal/configs"
	"github.com/mizutanik/kindle2md/internal/ui"
	"github.com/spf13/cobra"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite existing config files with defaults")
	ConfigCmd.AddCommand(configInitCmd)
}

// resetConfigInitState resets the config init command's global state for testing.
func resetConfigInitState() {
	configInitForce = false
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config files for a project directory",
	Long: `Creates config.json and config.local.json with built-in defaults in
the project directory, and appends the machine-local file together with
screenshot and transcript patterns to .gitignore. Entries already present
in .gitignore are left alone, so running init twice is harmless.

Existing config files are kept unless --force is given.

Examples:
  # Set up the current directory
  kindle2md config init

  # Start over with defaults
  kindle2md config init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config init command")
		store := openStore(configDirFlag, ConfigLogger)

		if store.SharedStatus.Source == configs.SourceFile && !configInitForce {
			fmt.Println(ui.Warning.Sprint("⚠") + " " + ui.Path.Sprint(configs.SharedConfigFile) + " already exists")
			fmt.Println(ui.Info.Sprint("→") + " Use " + ui.Code.Sprint("--force") + " to overwrite it with defaults")
			return nil
		}

		// The store has already merged any existing files over the defaults;
		// a forced init must write pristine defaults, not the merge.
		if configInitForce {
			ConfigLogger.Infof("Resetting configuration to built-in defaults")
			store.ResetToDefaults()
		}

		if err := store.SaveSharedConfig(); err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to write %s: %v", configs.SharedConfigFile, err)
		}
		if err := store.SaveLocalConfig(); err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to write %s: %v", configs.LocalConfigFile, err)
		}
		if err := store.EnsureGitignore(); err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to update .gitignore: %v", err)
		}

		fmt.Println(ui.Success.Sprint("✓") + " Created " + ui.Path.Sprint(store.SharedPath))
		fmt.Println(ui.Success.Sprint("✓") + " Created " + ui.Path.Sprint(store.LocalPath))
		fmt.Println(ui.Success.Sprint("✓") + " Updated .gitignore")
		fmt.Println()
		fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("kindle2md capture run") + " to start a session")
		return nil
	},
}
