package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the importer's configuration. Technical knobs with
// sane production defaults live in NewDefaultConfig; only the handful a
// user is likely to override belong in a TOML file passed via --config.
type Config struct {
	Acquisition AcquisitionConfig `toml:"acquisition"`
	Cache       CacheConfig       `toml:"cache"`
	Parser      ParserConfig      `toml:"parser"`
	Output      OutputConfig      `toml:"output"`
	Logging     LoggingConfig     `toml:"logging"`
	Alias       AliasConfig       `toml:"alias"`
}

// AcquisitionConfig controls the structured-JSON/HTML fetch stage.
type AcquisitionConfig struct {
	BaseURL       string        `toml:"base_url"`       // e.g. "https://www.lexml.gov.br"
	RequestTimeout time.Duration `toml:"request_timeout"`
	RetryAttempts int           `toml:"retry_attempts"`
	RetryBackoff  time.Duration `toml:"retry_backoff"`
	UserAgent     string        `toml:"user_agent"`
}

// CacheConfig controls the optional URN-keyed local acquisition cache.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// ParserConfig controls HTML parser selection (spec.md §4.6, §6).
type ParserConfig struct {
	ForceTextParser bool `toml:"force_text_parser"` // mirrors IMPORTER_TEXT_PARSER=1
}

// OutputConfig controls where the emitted JSON document is written.
type OutputConfig struct {
	DefaultPath string `toml:"default_path"`
}

// LoggingConfig mirrors the teacher's logging shape, trimmed to what a
// single-shot CLI importer needs.
type LoggingConfig struct {
	Level      string   `toml:"level"`       // debug|info|warn|error
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // default "15:04:05.000"
}

// AliasConfig points at the external alias->URN lookup table (spec.md §1,
// "treated as external configuration").
type AliasConfig struct {
	File string `toml:"file"`
}

// NewDefaultConfig returns a Config with production-sane defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Acquisition: AcquisitionConfig{
			BaseURL:        "https://www.lexml.gov.br/urn/resolver",
			RequestTimeout: 30 * time.Second,
			RetryAttempts:  3,
			RetryBackoff:   500 * time.Millisecond,
			UserAgent:      "leiimporter/1.0",
		},
		Cache: CacheConfig{
			Enabled: true,
			Path:    "./data/cache",
		},
		Parser: ParserConfig{
			ForceTextParser: false,
		},
		Output: OutputConfig{
			DefaultPath: "./lei.json",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Output:     []string{"stdout"},
			TimeFormat: "15:04:05.000",
		},
		Alias: AliasConfig{
			File: "./aliases.yaml",
		},
	}
}

// LoadFromFiles loads configuration starting from defaults and merging each
// file in order (later files override earlier ones), the same
// default->file->env priority chain the teacher's config loader uses.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)
	return config, nil
}

// applyEnvOverrides applies the small set of environment variables spec.md
// §6 calls out, plus cache/base-url overrides useful for CI.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("IMPORTER_TEXT_PARSER"); v == "1" {
		config.Parser.ForceTextParser = true
	}
	if v := os.Getenv("IMPORTER_BASE_URL"); v != "" {
		config.Acquisition.BaseURL = v
	}
	if v := os.Getenv("IMPORTER_CACHE_DIR"); v != "" {
		config.Cache.Path = v
	}
	if v := os.Getenv("IMPORTER_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
	if v := os.Getenv("IMPORTER_RETRY_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Acquisition.RetryAttempts = n
		}
	}
}

// ApplyFlagOverrides layers CLI flag values on top of a loaded config,
// following the teacher's CLI-beats-everything priority rule.
func ApplyFlagOverrides(config *Config, outputPath string, forceTextParser bool) {
	if outputPath != "" {
		config.Output.DefaultPath = outputPath
	}
	if forceTextParser {
		config.Parser.ForceTextParser = true
	}
}
