// Package config loads tabmill configuration from TOML files and the
// environment, with viper handling precedence and defaults.
package config

// Config represents the tabmill configuration
type Config struct {
	Scan    ScanConfig    `mapstructure:"scan"`
	Display DisplayConfig `mapstructure:"display"`
	Mirror  MirrorConfig  `mapstructure:"mirror"`
}

// ScanConfig configures the input side of a scan run
type ScanConfig struct {
	Delimiter string `mapstructure:"delimiter"` // Field delimiter, single character (default: ",")
	MaxRows   int    `mapstructure:"max_rows"`  // Lines read from input, clamped to [1, 1000] (default: 10)
}

// DisplayConfig configures table presentation
type DisplayConfig struct {
	TruncateWidth int `mapstructure:"truncate_width"`  // Per-field display truncation (default: 40)
	MaxTableWidth int `mapstructure:"max_table_width"` // Renderer-level width ceiling (default: 120)
}

// MirrorConfig configures the persisted copy of a rendered table
type MirrorConfig struct {
	Enabled bool   `mapstructure:"enabled"` // Write the accepted table to Path (default: true)
	Path    string `mapstructure:"path"`    // Mirror file path (default: "tabmill-out.txt")
}

// Row-cap bounds. Configured max_rows values outside this range are clamped,
// not rejected, so a bad config file never blocks a scan.
const (
	MinMaxRows = 1
	MaxMaxRows = 1000
)

// Clamp normalizes configured values into their hard ranges.
func (c *Config) Clamp() {
	if c.Scan.MaxRows < MinMaxRows {
		c.Scan.MaxRows = MinMaxRows
	}
	if c.Scan.MaxRows > MaxMaxRows {
		c.Scan.MaxRows = MaxMaxRows
	}
}
