package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all planner configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Team       TeamConfig       `toml:"team"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	OutputDir string `toml:"output_dir,omitempty"`
	PlanYear  int    `toml:"plan_year,omitempty"`
}

// TeamConfig holds membership settings.
type TeamConfig struct {
	ExtraMemberIDs []string `toml:"extra_member_ids,omitempty"`
}

// AppearanceConfig holds branding defaults applied when the CLI flags are
// not given.
type AppearanceConfig struct {
	TeamName string `toml:"team_name,omitempty"`
	Theme    string `toml:"theme,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			PlanYear: time.Now().Year(),
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "planner")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "planner")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// OutputDir returns the directory exported documents are written to: the
// configured directory when set, otherwise the user's working directory.
func (c Config) OutputDir() (string, error) {
	if c.General.OutputDir != "" {
		return c.General.OutputDir, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving output dir: %w", err)
	}
	return dir, nil
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
