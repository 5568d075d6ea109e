package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mizutanik/kindle2md/internal/configs"
	kerrors "github.com/mizutanik/kindle2md/internal/errors"
	logger "github.com/mizutanik/kindle2md/internal/logging"
	"github.com/mizutanik/kindle2md/internal/ui"
	"github.com/briandowns/spinner"
)

// openStore creates the config store for the given project directory (the
// working directory when empty) and attaches the command's logger.
func openStore(dir string, log logger.Logger) *configs.Store {
	store := configs.NewStore(dir)
	store.Logger = log
	return store
}

// parseRegionFlag parses an "x,y,width,height" flag value into a Region.
func parseRegionFlag(value string) (configs.Region, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 4 {
		return configs.Region{}, fmt.Errorf("expected x,y,width,height but got %q", value)
	}

	numbers := make([]int, 4)
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return configs.Region{}, fmt.Errorf("invalid number %q in region %q", part, value)
		}
		numbers[i] = n
	}

	// Reject degenerate rectangles here so they are never persisted and
	// reported only when a later capture fails.
	if numbers[2] <= 0 || numbers[3] <= 0 {
		return configs.Region{}, fmt.Errorf("%w: width and height must be positive in %q", kerrors.ErrInvalidRegion, value)
	}

	return configs.Region{X: numbers[0], Y: numbers[1], Width: numbers[2], Height: numbers[3]}, nil
}

// startSpinnerWithFlags creates and starts a spinner with explicit verbose and debug flags.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// automatically calls ui.EnsureNewline() on the final message before printing it.
// This ensures consistent output formatting across all commands.
func startSpinnerWithFlags(message string, verbose, debugFlag bool) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")

	if !verbose && !debugFlag {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	}

	cleanup := func() {
		// Restore log output first.
		if !verbose && !debugFlag {
			log.SetOutput(os.Stdout)
		}

		// Ensure final message ends with a newline.
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		// Stop the spinner first to clear the spinner line.
		if !verbose && !debugFlag {
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}
