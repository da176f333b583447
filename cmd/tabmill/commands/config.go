package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tabmill/tabmill/config"
	"github.com/tabmill/tabmill/display"
	"github.com/tabmill/tabmill/errors"
)

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage tabmill configuration",
	Long: `config — inspect tabmill configuration

Configuration is merged from ~/.tabmill/tabmill.toml, the nearest
tabmill.toml up the directory tree, and TABMILL_* environment variables.

Examples:
  tabmill config show          # Show effective configuration
  tabmill config show --json`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE:  runConfigShow,
}

func init() {
	ConfigCmd.AddCommand(configShowCmd)
	configShowCmd.Flags().Bool("json", false, "Output configuration as JSON")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cfg)
	}

	fmt.Println("Scan:")
	fmt.Printf("  delimiter:        %q\n", cfg.Scan.Delimiter)
	fmt.Printf("  max_rows:         %d\n", cfg.Scan.MaxRows)
	fmt.Println("Display:")
	fmt.Printf("  truncate_width:   %d\n", cfg.Display.TruncateWidth)
	fmt.Printf("  max_table_width:  %d\n", cfg.Display.MaxTableWidth)
	fmt.Println("Mirror:")
	fmt.Printf("  enabled:          %t\n", cfg.Mirror.Enabled)
	fmt.Printf("  path:             %s\n", cfg.Mirror.Path)
	return nil
}
