package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/darrenyao/dingtalk-agent-sdk/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/dingtalk-agent"
	configFileName = "config.yaml"
)

// GetDefaultConfigPathOrPanic returns the user-level configuration
// directory.
func GetDefaultConfigPathOrPanic() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Errorf("could not determine user config directory: %w", err))
	}

	return filepath.Join(homeDir, userConfigDir)
}

// LoadConfig loads configuration from the specified directory. The
// directory should contain config.yaml; a missing file yields the
// defaults, a malformed file is an error.
func LoadConfig(configPath string) (Config, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	cfg := GetDefaultConfig()

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Info("Config", "No config.yaml found at %s, using defaults", configFilePath)
			return cfg, nil
		}
		logging.Info("Config", "Error loading config.yaml from %s: %s", configFilePath, err)
		return Config{}, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		// config malformed
		return Config{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
	}
	applyDefaults(&cfg)

	logging.Info("Config", "Loaded configuration from %s", configFilePath)
	return cfg, nil
}
