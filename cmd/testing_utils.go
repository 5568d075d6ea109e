// Package cmd contains testing utilities shared between command tests.
// This file provides common functions for capturing output and running
// commands against a temporary project directory.
package cmd

import (
	"bytes"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	// Save original stdout and stderr
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	// Create pipes to capture output
	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	// Replace stdout and stderr
	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	// Channel to collect output
	outputChan := make(chan string, 2)

	// Start goroutines to read from pipes
	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stdoutReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stderrReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	// Execute the function
	err := fn()

	// Close writers to signal EOF
	stdoutWriter.Close()
	stderrWriter.Close()

	// Restore original stdout and stderr
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	// Collect output
	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// createTestRoot creates a fresh root command wired to the real command
// groups, pointed at the given arguments.
func createTestRoot(args ...string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kindle2md",
		Short: "Capture book pages from a desktop reader and transcribe them to Markdown.",
	}
	rootCmd.AddCommand(CaptureCmd)
	rootCmd.AddCommand(TranscribeCmd)
	rootCmd.AddCommand(ConfigCmd)
	rootCmd.SetArgs(args)
	return rootCmd
}
