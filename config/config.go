package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/unbox/internal/domain/entities"
)

// RepoConfFile is the per-repository provisioning record, one JSON
// object at the repository root.
const RepoConfFile = ".unbox.conf"

// DefaultVenvBin is the environment creation tool used when neither the
// CLI flag nor the tool config overrides it.
const DefaultVenvBin = "virtualenv"

// Config is the tool-level configuration with user defaults. It is
// optional; zero values fall back to built-in defaults.
type Config struct {
	VenvBin string `yaml:"venv_bin"`
	Verbose bool   `yaml:"verbose"`
}

// Load reads and parses a tool configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg Config
	if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}
	if cfg.VenvBin == "" {
		cfg.VenvBin = DefaultVenvBin
	}
	return &cfg, nil
}

// LoadDefault returns the tool configuration from the first file found
// in the standard locations, or built-in defaults when there is none.
func LoadDefault() *Config {
	path, err := FindConfigFile()
	if err != nil {
		return &Config{VenvBin: DefaultVenvBin}
	}
	cfg, loadErr := Load(path)
	if loadErr != nil {
		return &Config{VenvBin: DefaultVenvBin}
	}
	return cfg
}

// FindConfigFile searches for a tool configuration file in standard
// locations. Returns the path to the first file found or an error if
// none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".unbox.yaml",
		".unbox.yml",
		"unbox.yaml",
		"unbox.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// LoadRepo reads the provisioning record from a repository root. A
// missing file is not an error and yields a zero-value config, so
// un-configured repositories can still be cloned and updated.
func LoadRepo(dir string) (*entities.RepoConfig, error) {
	path := filepath.Join(dir, RepoConfFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &entities.RepoConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}

	var conf entities.RepoConfig
	if unmarshalErr := json.Unmarshal(data, &conf); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, unmarshalErr)
	}
	return &conf, nil
}

// SaveRepo writes the provisioning record to a repository root.
func SaveRepo(dir string, conf *entities.RepoConfig) error {
	data, err := json.MarshalIndent(conf, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode repo config: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(dir, RepoConfFile)
	if writeErr := os.WriteFile(path, data, 0o644); writeErr != nil {
		return fmt.Errorf("failed to write %q: %w", path, writeErr)
	}
	return nil
}
