package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
database:
  dsn: "postgres://u:p@localhost:5432/movies"
  name: "cinema"
  connect_timeout: "3s"

log:
  level: "debug"
  format: "json"

loader:
  file: "data/movies.xlsx"
  sheet: "list"
  skip_rows: 2
  timeout: "5m"
`

func TestLoadPath_ValidYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)

	cfg, err := LoadPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Database.DSN != "postgres://u:p@localhost:5432/movies" {
		t.Errorf("database.dsn = %q", cfg.Database.DSN)
	}
	if cfg.Database.Name != "cinema" {
		t.Errorf("database.name = %q, want %q", cfg.Database.Name, "cinema")
	}
	if cfg.Database.ConnectTimeout != 3*time.Second {
		t.Errorf("database.connect_timeout = %v, want 3s", cfg.Database.ConnectTimeout)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("log = %+v, want debug/json", cfg.Log)
	}
	if cfg.Loader.File != "data/movies.xlsx" {
		t.Errorf("loader.file = %q", cfg.Loader.File)
	}
	if cfg.Loader.Sheet != "list" {
		t.Errorf("loader.sheet = %q, want %q", cfg.Loader.Sheet, "list")
	}
	if cfg.Loader.SkipRows != 2 {
		t.Errorf("loader.skip_rows = %d, want 2", cfg.Loader.SkipRows)
	}
	if cfg.Loader.Timeout != 5*time.Minute {
		t.Errorf("loader.timeout = %v, want 5m", cfg.Loader.Timeout)
	}
}

func TestLoadPath_EnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("LOADER_SKIP_ROWS", "7")
	t.Setenv("DATABASE_NAME", "override")

	cfg, err := LoadPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Loader.SkipRows != 7 {
		t.Errorf("loader.skip_rows = %d, want 7 (from ENV)", cfg.Loader.SkipRows)
	}
	if cfg.Database.Name != "override" {
		t.Errorf("database.name = %q, want %q (from ENV)", cfg.Database.Name, "override")
	}
}

func TestLoadPath_DefaultsFromEnvOnly(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/x")

	cfg, err := LoadPath("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Loader.File != "movie_list.xls" {
		t.Errorf("loader.file default = %q, want %q", cfg.Loader.File, "movie_list.xls")
	}
	if cfg.Loader.SkipRows != 4 {
		t.Errorf("loader.skip_rows default = %d, want 4", cfg.Loader.SkipRows)
	}
	if cfg.Loader.Timeout != 30*time.Minute {
		t.Errorf("loader.timeout default = %v, want 30m", cfg.Loader.Timeout)
	}
	if cfg.Database.ConnectTimeout != 10*time.Second {
		t.Errorf("database.connect_timeout default = %v, want 10s", cfg.Database.ConnectTimeout)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("log defaults = %+v, want info/text", cfg.Log)
	}
}

func TestLoadPath_ExplicitPathMissing(t *testing.T) {
	_, err := LoadPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
	if !strings.Contains(err.Error(), "nope.yaml") {
		t.Errorf("error should mention the path, got: %v", err)
	}
}

func TestLoad_UsesConfigPathEnv(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Name != "cinema" {
		t.Errorf("database.name = %q, want %q", cfg.Database.Name, "cinema")
	}
}

func validConfig() Config {
	return Config{
		Database: DatabaseConfig{DSN: "postgres://u:p@localhost:5432/movies"},
		Loader: LoaderConfig{
			File:     "movie_list.xls",
			SkipRows: 4,
			Timeout:  time.Minute,
		},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "empty file", mutate: func(c *Config) { c.Loader.File = "  " }, wantErr: "loader.file"},
		{name: "negative skip rows", mutate: func(c *Config) { c.Loader.SkipRows = -1 }, wantErr: "skip_rows"},
		{name: "zero timeout", mutate: func(c *Config) { c.Loader.Timeout = 0 }, wantErr: "timeout"},
		{name: "missing dsn", mutate: func(c *Config) { c.Database.DSN = "" }, wantErr: "database.dsn"},
		{
			name:   "missing dsn allowed on dry run",
			mutate: func(c *Config) { c.Database.DSN = ""; c.Loader.DryRun = true },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
