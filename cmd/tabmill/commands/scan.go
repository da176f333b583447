package commands

import (
	"os"
	"os/signal"
	"syscall"
	"unicode/utf8"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tabmill/tabmill/config"
	"github.com/tabmill/tabmill/display"
	"github.com/tabmill/tabmill/errors"
	"github.com/tabmill/tabmill/loader"
	"github.com/tabmill/tabmill/logger"
	"github.com/tabmill/tabmill/render"
	"github.com/tabmill/tabmill/scan"
)

// ScanCmd represents the scan command
var ScanCmd = &cobra.Command{
	Use:   "scan <file>",
	Short: "Infer a schema from a delimited file and render the validated table",
	Long: `scan — run the pipeline over one input file

The first non-blank line is the header row; its fields are classified into
column types (Float, Int, Bool, Null, String) and every following row is
validated against that schema. On a fully clean pass the table is rendered
with type-derived headers and mirrored to the configured output file.
Any rejected row suppresses the table and surfaces warnings instead.

Examples:
  tabmill scan data.csv
  tabmill scan data.csv --delimiter ';' --max-rows 100
  tabmill scan data.csv --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

var (
	scanDelimiterFlag string
	scanMaxRowsFlag   int
	scanNoMirrorFlag  bool
	scanWatchFlag     bool
)

func init() {
	ScanCmd.Flags().StringVarP(&scanDelimiterFlag, "delimiter", "d", ",", "Field delimiter (single character)")
	ScanCmd.Flags().IntVar(&scanMaxRowsFlag, "max-rows", 0, "Lines read from input, 1-1000 (default from config)")
	ScanCmd.Flags().BoolVar(&scanNoMirrorFlag, "no-mirror", false, "Skip writing the persisted table copy")
	ScanCmd.Flags().BoolVarP(&scanWatchFlag, "watch", "w", false, "Re-scan whenever the input file changes")
	ScanCmd.Flags().Bool("json", false, "Output scan result as JSON")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	if cmd.Flags().Changed("delimiter") {
		cfg.Scan.Delimiter = scanDelimiterFlag
	}
	if utf8.RuneCountInString(cfg.Scan.Delimiter) != 1 {
		return errors.Newf("delimiter must be a single character, got %q", cfg.Scan.Delimiter)
	}
	if cmd.Flags().Changed("max-rows") {
		cfg.Scan.MaxRows = scanMaxRowsFlag
		cfg.Clamp()
	}
	if scanNoMirrorFlag {
		cfg.Mirror.Enabled = false
	}

	path := args[0]
	processor := scan.NewProcessor(cfg, logger.Logger)

	if !scanWatchFlag {
		return scanOnce(cmd, processor, cfg, path)
	}

	// Watch mode: scan now, then on every debounced file change. Run
	// failures keep the watch alive; a missing file at startup does not.
	if err := scanOnce(cmd, processor, cfg, path); err != nil {
		return err
	}

	watcher, err := loader.NewWatcher(path, func() {
		if err := scanOnce(cmd, processor, cfg, path); err != nil {
			logger.Errorw("re-scan failed", "file", path, "error", err)
		}
	})
	if err != nil {
		return err
	}
	defer watcher.Stop()
	watcher.Start()
	logger.Infow("watching for changes", "file", path)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	return nil
}

func scanOnce(cmd *cobra.Command, processor *scan.Processor, cfg *config.Config, path string) error {
	result, err := processor.Run(path)
	if err != nil {
		return err
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(result)
	}

	if !result.Rendered {
		// Warnings were already surfaced individually by the processor.
		pterm.Printf("%s %s\n",
			pterm.Yellow("no table output:"),
			pterm.Gray(suppressionSummary(result)))
		return nil
	}

	if err := render.Table(result.Presentation, cfg.Display.MaxTableWidth); err != nil {
		return errors.Wrap(err, "failed to render table")
	}

	if cfg.Mirror.Enabled {
		if err := render.Mirror(cfg.Mirror.Path, result.Headers, result.Accepted, cfg.Scan.Delimiter); err != nil {
			return err
		}
		logger.Infow("table mirrored", "path", cfg.Mirror.Path)
	}

	pterm.Printf("%s %d rows, %d columns\n",
		pterm.LightGreen("✓"),
		result.RowsAccepted,
		len(result.Headers))
	return nil
}

func suppressionSummary(result *scan.Result) string {
	if result.RowsRejected > 0 {
		return pterm.Sprintf("%d of %d rows rejected", result.RowsRejected, result.RowsRead)
	}
	return "no data rows"
}
