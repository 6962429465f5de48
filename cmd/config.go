package cmd

import (
	"fmt"

	"inventory-reconciler/core/config"
	"inventory-reconciler/feature/inventory"

	"github.com/spf13/cobra"
)

// Settings is the shared configuration plus the counting run section.
type Settings struct {
	config.Config `mapstructure:",squash"`
	// Inventory holds the file layout and the per-run options.
	Inventory inventory.Config `mapstructure:"inventory"`
}

// LoadSettings loads the settings found in dir (.env and environment).
func LoadSettings(dir string) (*Settings, error) {
	var s Settings
	if err := config.Load(dir, &s); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	s.Inventory.Layout = s.Inventory.Layout.WithDefaults()
	return &s, nil
}

// loadConfig loads the settings and applies the flags that were set.
func loadConfig(cmd *cobra.Command) (*Settings, error) {
	cfg, err := LoadSettings(".")
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("spaces") {
		cfg.Inventory.SpacesFile = spacesFile
	}
	if flags.Changed("verbose") {
		cfg.Inventory.Verbose = verbose
	}
	if flags.Changed("xlsx") {
		cfg.Inventory.XLSX = xlsx
	}
	return cfg, nil
}
