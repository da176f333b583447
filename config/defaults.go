package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Scan defaults
	v.SetDefault("scan.delimiter", ",")
	v.SetDefault("scan.max_rows", 10) // lines read from input, hard range 1-1000

	// Display defaults
	v.SetDefault("display.truncate_width", 40)   // per-field cut, "..." appended beyond this
	v.SetDefault("display.max_table_width", 120) // renderer warns past this, never the core

	// Mirror defaults
	v.SetDefault("mirror.enabled", true)
	v.SetDefault("mirror.path", "tabmill-out.txt")
}
