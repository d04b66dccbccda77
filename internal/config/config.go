package config

import "time"

// Config is the root loader configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Loader   LoaderConfig   `yaml:"loader"`
}

// DatabaseConfig holds PostgreSQL connection settings.
// Name, when set, replaces the database named in DSN.
type DatabaseConfig struct {
	DSN            string        `yaml:"dsn"             env:"DATABASE_DSN"`
	Name           string        `yaml:"name"            env:"DATABASE_NAME"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"DATABASE_CONNECT_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// LoaderConfig holds spreadsheet and run settings.
type LoaderConfig struct {
	File     string        `yaml:"file"      env:"LOADER_FILE"      env-default:"movie_list.xls"`
	Sheet    string        `yaml:"sheet"     env:"LOADER_SHEET"`
	SkipRows int           `yaml:"skip_rows" env:"LOADER_SKIP_ROWS" env-default:"4"`
	Timeout  time.Duration `yaml:"timeout"   env:"LOADER_TIMEOUT"   env-default:"30m"`
	DryRun   bool          `yaml:"dry_run"   env:"LOADER_DRY_RUN"`
}
