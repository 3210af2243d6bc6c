package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ConfigPath is the location of the optional YAML config file.
type ConfigPath string

// Config holds settings shared by both tools. Values come from the YAML file, then
// environment variables override them, then defaults fill what is still empty.
type Config struct {
	LogLevel string         `yaml:"log_level" env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn warning error"`
	Timezone string         `yaml:"timezone" env:"OHLCV_TIMEZONE" validate:"required"`
	Adjust   AdjustConfig   `yaml:"adjust"`
	Drop     DropConfig     `yaml:"drop"`
	Export   ExportConfig   `yaml:"export"`
	Backup   BackupConfig   `yaml:"backup"`
	Database DatabaseConfig `yaml:"database"`
}

// AdjustConfig configures the price adjuster.
type AdjustConfig struct {
	Input string `yaml:"input" env:"ADJUST_INPUT" validate:"required"`
}

// DropConfig configures the column dropper. An empty Output writes back to Input.
type DropConfig struct {
	Input   string   `yaml:"input" env:"DROP_INPUT" validate:"required"`
	Output  string   `yaml:"output" env:"DROP_OUTPUT"`
	Columns []string `yaml:"columns" env:"DROP_COLUMNS" envSeparator:"," validate:"dive,required"`
}

// ExportConfig enables a side copy of adjusted bars. An empty Format disables it.
type ExportConfig struct {
	Format string `yaml:"format" env:"EXPORT_FORMAT" validate:"omitempty,export_format"`
	Dir    string `yaml:"dir" env:"EXPORT_DIR"`
}

// BackupConfig enables compressed snapshots before overwriting. An empty Dir disables them.
type BackupConfig struct {
	Dir string `yaml:"dir" env:"BACKUP_DIR"`
}

// DatabaseConfig points at the SQLite edit journal. An empty path disables it.
type DatabaseConfig struct {
	SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH"`
}

// Load reads config from a YAML file, then applies environment variable overrides and
// defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// DropOutput returns where the dropper writes.
func (c *Config) DropOutput() string {
	if c.Drop.Output != "" {
		return c.Drop.Output
	}
	return c.Drop.Input
}

func cleanList(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
