package cmd

import (
	"fmt"

	"github.com/mizutanik/kindle2md/internal/ui"
	"github.com/spf13/cobra"
)

var regionSet string

func init() {
	captureRegionCmd.Flags().StringVar(&regionSet, "set", "", "remember a new region as x,y,width,height")
	CaptureCmd.AddCommand(captureRegionCmd)
}

// resetCaptureRegionState resets the capture region command's global state for testing.
func resetCaptureRegionState() {
	regionSet = ""
}

var captureRegionCmd = &cobra.Command{
	Use:   "region",
	Short: "Show or change the screen region being captured",
	Long: `Shows the effective capture region: the remembered region from
config.local.json, falling back to the shared default in config.json.

With --set, the given region is remembered in config.local.json and used
by every following capture run.

Examples:
  # Show the current region
  kindle2md capture region

  # Remember a new region
  kindle2md capture region --set 100,80,1280,960`,
	RunE: func(cmd *cobra.Command, args []string) error {
		CaptureLogger.Infof("Starting capture region command")
		store := openStore(captureDir, CaptureLogger)

		if regionSet != "" {
			region, err := parseRegionFlag(regionSet)
			if err != nil {
				return CaptureLogger.ErrorfAndReturn("Invalid --set: %v", err)
			}
			if err := store.SetCaptureRegion(region.X, region.Y, region.Width, region.Height); err != nil {
				return CaptureLogger.ErrorfAndReturn("Failed to save region: %v", err)
			}
			fmt.Printf("%s Capture region set to %s\n",
				ui.Success.Sprint("✓"),
				ui.Highlight.Sprintf("%d,%d %dx%d", region.X, region.Y, region.Width, region.Height))
			return nil
		}

		region := store.CaptureRegion()
		fmt.Printf("Capture region: %s at %s\n",
			ui.Highlight.Sprintf("%dx%d", region.Width, region.Height),
			ui.Highlight.Sprintf("(%d, %d)", region.X, region.Y))
		fmt.Println(ui.Info.Sprint("→") + " Change it with " + ui.Code.Sprint("kindle2md capture region --set x,y,width,height"))
		return nil
	},
}
