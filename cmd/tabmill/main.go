package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tabmill/tabmill/cmd/tabmill/commands"
	"github.com/tabmill/tabmill/errors"
	"github.com/tabmill/tabmill/logger"
)

// Exit codes. Missing input, empty input, and a bad header row are distinct
// externally observable outcomes; a suppressed table from a dirty validation
// pass is not a failure and exits 0.
const (
	exitFailure       = 1
	exitFileNotFound  = 2
	exitEmptyInput    = 3
	exitInvalidHeader = 4
)

var rootCmd = &cobra.Command{
	Use:   "tabmill",
	Short: "Infer, validate, and display delimited table snapshots",
	Long: `tabmill - schema inference and validation for delimited text tables

tabmill reads a delimited text file, infers a per-column schema from the
first row, validates every following row against it, and renders the table
with type-derived headers. A single invalid row suppresses the whole table.

Available commands:
  scan    - Run the pipeline over an input file
  config  - Show effective configuration
  version - Show version information

Examples:
  tabmill scan data.csv               # Scan with configured defaults
  tabmill scan data.csv --delimiter ';'
  tabmill scan data.csv --watch       # Re-scan whenever the file changes
  tabmill scan data.csv --json        # Machine-readable result`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if err := logger.Initialize(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json", false, "Output machine-readable JSON")

	rootCmd.AddCommand(commands.ScanCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

// exitCode maps run-aborting errors to their process outcomes
func exitCode(err error) int {
	switch {
	case errors.IsFileNotFound(err):
		return exitFileNotFound
	case errors.IsEmptyInput(err):
		return exitEmptyInput
	case errors.IsInvalidHeaderRow(err):
		return exitInvalidHeader
	default:
		return exitFailure
	}
}

func main() {
	err := rootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
