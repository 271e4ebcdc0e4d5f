package common

import (
	"fmt"

	"hudmirror/pkg/config"

	"github.com/spf13/cobra"
)

// AddDatabaseFlag registers --db for commands reading the database.
func AddDatabaseFlag(cmd *cobra.Command) {
	cmd.Flags().String("db", "", "Path to the HUD XML database (overrides config)")
}

// AddOutDirFlag registers --outdir for commands writing downloads.
func AddOutDirFlag(cmd *cobra.Command) {
	cmd.Flags().String("outdir", "", "Output directory (overrides config)")
}

// LoadConfig reads the config file named by --config and applies the
// command line overrides on top of it.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := config.DefaultPath()
	if f := cmd.Flag("config"); f != nil {
		path = f.Value.String()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if f := cmd.Flags().Lookup("db"); f != nil && f.Changed {
		cfg.Database = f.Value.String()
	}
	if f := cmd.Flags().Lookup("outdir"); f != nil && f.Changed {
		cfg.OutDir = f.Value.String()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
