package config

import (
	"fmt"
	"strings"
)

// Validate checks the configuration after all overrides are applied.
// A database DSN is only required when the run writes to the database.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Loader.File) == "" {
		return fmt.Errorf("loader.file must not be empty")
	}
	if c.Loader.SkipRows < 0 {
		return fmt.Errorf("loader.skip_rows must be >= 0 (got %d)", c.Loader.SkipRows)
	}
	if c.Loader.Timeout <= 0 {
		return fmt.Errorf("loader.timeout must be > 0 (got %v)", c.Loader.Timeout)
	}

	if !c.Loader.DryRun && strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required unless dry_run is set")
	}

	return nil
}
