package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

const appName = "memorymatch"

// Config represents the application configuration
type Config struct {
	GridSize      int      `toml:"grid_size" validate:"oneof=2 4 6"`
	Palette       string   `toml:"palette"`
	MatchDelay    Duration `toml:"match_delay" validate:"gt=0"`
	MismatchDelay Duration `toml:"mismatch_delay" validate:"gt=0"`
	LogLevel      string   `toml:"log_level" validate:"oneof=debug info warn error"`
}

// Duration is a time.Duration written as a string ("600ms", "1s") in TOML
type Duration time.Duration

// Std returns d as a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %v", string(text), err)
	}
	*d = Duration(parsed)
	return nil
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		GridSize:      4,
		MatchDelay:    Duration(600 * time.Millisecond),
		MismatchDelay: Duration(time.Second),
		LogLevel:      "info",
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field against its constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetXDGStateHome returns XDG_STATE_HOME or default path
func GetXDGStateHome() string {
	if xdgState := os.Getenv("XDG_STATE_HOME"); xdgState != "" {
		return xdgState
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "state")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.toml")
}

// DefaultLogFilePath returns where the play command logs by default
func DefaultLogFilePath() string {
	return filepath.Join(GetXDGStateHome(), appName, "play.log")
}

// LoadConfig loads the config file, creating it with defaults if missing
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	return config, nil
}

// createDefaultConfig writes and returns the default config
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := SaveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes the config file, creating its directory if needed
func SaveConfig(config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	configPath := GetConfigFilePath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}

// SetGridSize sets the default grid size in the config
func SetGridSize(size int) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.GridSize = size
	return SaveConfig(config)
}
