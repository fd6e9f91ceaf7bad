package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"setlist/pkg/models"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config represents the application configuration
type Config struct {
	Logging  LoggingConfig  `toml:"logging"`
	Playback PlaybackConfig `toml:"playback"`
	Catalog  []models.Song  `toml:"catalog,omitempty"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

// PlaybackConfig controls which traversals the demo runs
type PlaybackConfig struct {
	ShuffleSeed  int64  `toml:"shuffle_seed"` // 0 picks a random order every run
	OldiesCutoff int    `toml:"oldies_cutoff"`
	Genre        string `toml:"genre"`
	Artist       string `toml:"artist"`
}

// Environment variables that override values from the config file
const (
	EnvLogLevel    = "SETLIST_LOG_LEVEL"
	EnvShuffleSeed = "SETLIST_SHUFFLE_SEED"
	EnvGenre       = "SETLIST_GENRE"
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			File:   "",
		},
		Playback: PlaybackConfig{
			ShuffleSeed:  0,
			OldiesCutoff: 2000,
			Genre:        "rock",
			Artist:       "Queen",
		},
	}
}

// LoadConfig loads configuration from a TOML file, creating it with
// defaults when it does not exist yet
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := cfg.SaveToFile(configPath); err != nil {
			return nil, fmt.Errorf("failed to create default config file: %w", err)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// LoadEnvFile loads variables from a .env file if one exists.
// Variables already set in the environment win.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides config values with the SETLIST_* environment variables
func (c *Config) ApplyEnv() error {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}

	if seed := os.Getenv(EnvShuffleSeed); seed != "" {
		parsed, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvShuffleSeed, seed, err)
		}
		c.Playback.ShuffleSeed = parsed
	}

	if genre := os.Getenv(EnvGenre); genre != "" {
		c.Playback.Genre = genre
	}

	return c.Validate()
}

// SaveToFile saves the configuration to a TOML file
func (c *Config) SaveToFile(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	header := `# Setlist Configuration
# shuffle_seed = 0 gives a different shuffle every run.
# Add [[catalog]] entries to replace the built-in sample songs.

`
	if _, err := file.WriteString(header); err != nil {
		return fmt.Errorf("failed to write config header: %w", err)
	}

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config to TOML: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logging.Level)
	}

	validLogFormats := map[string]bool{
		"text": true, "json": true,
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", c.Logging.Format)
	}

	if c.Playback.OldiesCutoff <= 0 {
		return fmt.Errorf("oldies cutoff must be a positive year")
	}

	for i, song := range c.Catalog {
		if song.Title == "" {
			return fmt.Errorf("catalog entry %d has no title", i+1)
		}
		if song.Duration < 0 {
			return fmt.Errorf("catalog entry %d (%s) has a negative duration", i+1, song.Title)
		}
	}

	return nil
}
