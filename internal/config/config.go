// Package config loads worklog settings from an optional YAML file and
// environment variables. Environment values win over the file; the file
// wins over defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines application configuration.
type Config struct {
	DB       DBConfig   `yaml:"db"`
	WorkNorm NormConfig `yaml:"work_norm"`
	Log      LogConfig  `yaml:"log"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type NormConfig struct {
	// Minutes is the daily work norm. Defaults to 450 (7.5 hours).
	Minutes int `yaml:"minutes"`
}

type LogConfig struct {
	Verbose bool `yaml:"verbose"`
}

// Load reads configuration. Without WORKLOG_CONFIG_PATH the default
// file ~/.worklog/config.yaml is read when present; a missing default
// file is not an error.
func Load() (Config, error) {
	cfg := Config{
		WorkNorm: NormConfig{Minutes: 450},
	}

	path := os.Getenv("WORKLOG_CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".worklog", "config.yaml")
		}
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			if explicit || !os.IsNotExist(err) {
				return Config{}, err
			}
		}
	}

	if dbPath := os.Getenv("WORKLOG_DB"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if norm := os.Getenv("WORKLOG_NORM_MINUTES"); norm != "" {
		minutes, err := strconv.Atoi(norm)
		if err != nil || minutes <= 0 {
			return Config{}, fmt.Errorf("invalid WORKLOG_NORM_MINUTES %q", norm)
		}
		cfg.WorkNorm.Minutes = minutes
	}
	if verbose := os.Getenv("WORKLOG_VERBOSE"); verbose != "" {
		v, err := strconv.ParseBool(verbose)
		if err != nil {
			return Config{}, fmt.Errorf("invalid WORKLOG_VERBOSE %q", verbose)
		}
		cfg.Log.Verbose = v
	}

	if cfg.WorkNorm.Minutes <= 0 {
		return Config{}, fmt.Errorf("work norm must be positive, got %d", cfg.WorkNorm.Minutes)
	}
	return cfg, nil
}

// DBPath resolves the database location, defaulting to
// ~/.worklog/worklog.db.
func (c Config) DBPath() (string, error) {
	if c.DB.Path != "" {
		return c.DB.Path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".worklog", "worklog.db"), nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return err
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
