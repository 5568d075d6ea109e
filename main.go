package main

import (
	"fmt"
	"os"

	"github.com/mizutanik/kindle2md/cmd"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kindle2md",
	Short: "Kindle2md - Capture book pages from a desktop reader and transcribe them to Markdown.",
	Long: `Kindle2md automates reading a book out of a desktop reader application:
it brings the reader window to the front, screenshots one page at a time
while turning pages, then runs OCR over the screenshots to produce a single
Markdown transcript.

Features:
  - Capture a configurable screen region, one screenshot per page
  - Transcribe screenshots with tesseract, including Japanese vertical text
  - Layered JSON configuration shared between machines via version control

Usage:
  kindle2md <command> [flags]

Available Commands:
  capture     Capture book pages from the reader window
  transcribe  Turn captured screenshots into Markdown
  config      Manage project configuration

Run 'kindle2md help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		myFigure := figure.NewColorFigure("kindle2md", "alligator2", "green", true)
		myFigure.Print()
		fmt.Println()
		fmt.Println("Run 'kindle2md --help' to see available commands.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.CaptureCmd)
	rootCmd.AddCommand(cmd.TranscribeCmd)
	rootCmd.AddCommand(cmd.ConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
