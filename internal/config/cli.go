package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// CLIConfig holds client-side configuration, loaded from ~/.ynaht.yaml.
// Every field is optional; zero values fall back to defaults.
type CLIConfig struct {
	APIURL  string `yaml:"api_url"`
	DataDir string `yaml:"data_dir"`
	Debug   bool   `yaml:"debug"`
}

// CLIConfigPath returns the path of the client config file.
func CLIConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".ynaht.yaml"), nil
}

// LoadCLI loads the client config. A missing file is not an error.
// YNAHT_* environment variables override file values.
func LoadCLI() (*CLIConfig, error) {
	cfg := &CLIConfig{}

	path, err := CLIConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	cfg.APIURL = getEnv("YNAHT_API_URL", cfg.APIURL)
	cfg.DataDir = getEnv("YNAHT_DATA_DIR", cfg.DataDir)
	cfg.Debug = getEnvBool("YNAHT_DEBUG", cfg.Debug)

	return cfg, nil
}

// SaveCLI writes the client config back to disk.
func SaveCLI(cfg *CLIConfig) error {
	path, err := CLIConfigPath()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
