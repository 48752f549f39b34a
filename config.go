package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultConfigDir      = ".gamenote"
	defaultOutputDir      = "games"
	defaultBaseURL        = "https://api.rawg.io/api"
	defaultTimeoutSeconds = 10
)

// Settings represents the YAML configuration structure
type Settings struct {
	OutputDirectory string `yaml:"output_directory"`
	API             struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"api"`
}

// APITimeout returns the configured HTTP timeout.
func (s *Settings) APITimeout() time.Duration {
	return time.Duration(s.API.TimeoutSeconds) * time.Second
}

func defaultSettings() *Settings {
	s := &Settings{OutputDirectory: defaultOutputDir}
	s.API.BaseURL = defaultBaseURL
	s.API.TimeoutSeconds = defaultTimeoutSeconds
	return s
}

// getConfigPath returns the path to a config file in the .gamenote directory
func getConfigPath(filename string) string {
	return filepath.Join(defaultConfigDir, filename)
}

// loadSettings loads settings from the default location, falling back to the
// built-in defaults when no settings file exists. A present but unparsable
// file is an error.
func loadSettings() (*Settings, error) {
	settingsPath := getConfigPath("settings.yaml")

	data, err := os.ReadFile(settingsPath)
	if os.IsNotExist(err) {
		return defaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings file %s: %w", settingsPath, err)
	}

	settings := defaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parsing settings YAML: %w", err)
	}

	if settings.OutputDirectory == "" {
		settings.OutputDirectory = defaultOutputDir
	}
	if settings.API.BaseURL == "" {
		settings.API.BaseURL = defaultBaseURL
	}
	if settings.API.TimeoutSeconds <= 0 {
		settings.API.TimeoutSeconds = defaultTimeoutSeconds
	}

	return settings, nil
}

// ensureConfigExists creates the config directory and a default settings file
// on first run so users have something to edit.
func ensureConfigExists() error {
	if _, err := os.Stat(defaultConfigDir); os.IsNotExist(err) {
		if err := os.MkdirAll(defaultConfigDir, 0755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	settingsPath := getConfigPath("settings.yaml")
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		defaults := `# Where game notes are written. --output-dir overrides this.
output_directory: games
api:
  base_url: https://api.rawg.io/api
  timeout_seconds: 10
`
		if err := os.WriteFile(settingsPath, []byte(defaults), 0644); err != nil {
			return fmt.Errorf("writing default settings: %w", err)
		}
	}

	return nil
}
