package cmd

import (
	logger "github.com/mizutanik/kindle2md/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	configVerbose bool
	configDebug   bool
	configDirFlag string
	ConfigLogger  logger.Logger

	// ConfigCmd is the top-level config command.
	ConfigCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage project configuration",
		Long: `Provides commands for managing the layered project configuration.

Settings live in two files inside the project directory: config.json holds
shared, version-controlled settings, and config.local.json holds machine-
local state like the last used capture region. Local values win over shared
ones; anything missing from both falls back to a built-in default.

Use these commands to:
  - Create the config files and .gitignore entries (config init)
  - Inspect the effective configuration (config show)
  - Read or write a single setting by dotted path (config get / set)
  - List recently captured books (config recent)

Examples:
  # Set up a new project directory
  kindle2md config init

  # Read one setting
  kindle2md config get app.default_ocr_lang

  # Change a shared setting
  kindle2md config set app.default_pages 250 --shared`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ConfigLogger = logger.Logger{
				Verbose: configVerbose,
				Debug:   configDebug,
			}
			ConfigLogger.Debugf("Initializing config command with verbose=%t, debug=%t", configVerbose, configDebug)
		},
	}
)

func init() {
	ConfigCmd.PersistentFlags().BoolVarP(&configVerbose, "verbose", "v", false, "enable verbose output")
	ConfigCmd.PersistentFlags().BoolVarP(&configDebug, "debug", "d", false, "enable debug output")
	ConfigCmd.PersistentFlags().StringVar(&configDirFlag, "dir", "", "project directory holding config.json (default: current directory)")
}

// GetConfigCmd returns the ConfigCmd for testing.
func GetConfigCmd() *cobra.Command {
	return ConfigCmd
}

// ResetConfigState resets all config command global variables to their default values for testing.
func ResetConfigState() {
	configVerbose = false
	configDebug = false
	configDirFlag = ""
	resetConfigInitState()
	resetConfigShowState()
	resetConfigSetState()
	resetConfigCobraFlagState()
}

// resetConfigCobraFlagState resets the flag state for all config commands to prevent test pollution.
func resetConfigCobraFlagState() {
	if ConfigCmd != nil && ConfigCmd.Flags() != nil {
		ConfigCmd.Flags().VisitAll(func(flag *pflag.Flag) {
			flag.Changed = false
		})
	}
}
