// Package config loads application settings from ~/.coursetrail/config.yaml,
// falling back to in-code defaults when the file is absent.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all settings for the application.
type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Player   PlayerConfig   `yaml:"player"`
	Learning LearningConfig `yaml:"learning"`
}

// StorageConfig selects and locates the persistence backend.
type StorageConfig struct {
	// Backend is "json" or "sqlite".
	Backend string `yaml:"backend"`
	// DataDir overrides the default ~/.coursetrail/data location.
	DataDir string `yaml:"data_dir,omitempty"`
}

// PlayerConfig holds media playback settings.
type PlayerConfig struct {
	AutosaveSeconds  int    `yaml:"autosave_seconds"`
	DefaultQuality   string `yaml:"default_quality"`
	SubtitlesEnabled bool   `yaml:"subtitles_enabled"`
}

// LearningConfig holds study tracking settings.
type LearningConfig struct {
	StudyIncrementMinutes int `yaml:"study_increment_minutes"`
}

// CoursetrailDir returns the path to ~/.coursetrail.
func CoursetrailDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".coursetrail"), nil
}

// EnsureCoursetrailDir creates ~/.coursetrail and its subdirectories if they
// don't exist.
func EnsureCoursetrailDir() (string, error) {
	dir, err := CoursetrailDir()
	if err != nil {
		return "", err
	}

	subdirs := []string{
		"",
		"data",
		"logs",
	}

	for _, subdir := range subdirs {
		path := filepath.Join(dir, subdir)
		if err := os.MkdirAll(path, 0755); err != nil {
			return "", fmt.Errorf("create dir %s: %w", path, err)
		}
	}

	return dir, nil
}

// DataDir resolves the directory persisted state lives in.
func (c *Config) DataDir() (string, error) {
	if c.Storage.DataDir != "" {
		return c.Storage.DataDir, nil
	}
	dir, err := CoursetrailDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "data"), nil
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: "json",
		},
		Player: PlayerConfig{
			AutosaveSeconds:  10,
			DefaultQuality:   "auto",
			SubtitlesEnabled: false,
		},
		Learning: LearningConfig{
			StudyIncrementMinutes: 15,
		},
	}
}

// Load reads ~/.coursetrail/config.yaml over the defaults. A missing file
// returns the defaults.
func Load() (*Config, error) {
	dir, err := CoursetrailDir()
	if err != nil {
		return nil, err
	}
	return LoadFile(filepath.Join(dir, "config.yaml"))
}

// LoadFile reads a specific config file over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to ~/.coursetrail/config.yaml.
func Save(cfg *Config) error {
	dir, err := EnsureCoursetrailDir()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case "json", "sqlite":
	default:
		return fmt.Errorf("unknown storage backend %q (want json or sqlite)", c.Storage.Backend)
	}
	if c.Player.AutosaveSeconds <= 0 {
		return fmt.Errorf("autosave_seconds must be positive, got %d", c.Player.AutosaveSeconds)
	}
	if c.Learning.StudyIncrementMinutes <= 0 {
		return fmt.Errorf("study_increment_minutes must be positive, got %d", c.Learning.StudyIncrementMinutes)
	}
	return nil
}
