package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	defaultMainWidth      = 90
	defaultInitialRoute   = "activity"
	defaultSampleInterval = 500 * time.Millisecond
)

// cliConfig holds the demo's configuration.
type cliConfig struct {
	MainWidth      int           `mapstructure:"main-width"`
	InitialRoute   string        `mapstructure:"initial-route"`
	SampleInterval time.Duration `mapstructure:"sample-interval"`
	HeaderShown    bool          `mapstructure:"header-shown"`
}

func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "surf", "config.yml"), nil
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	v := viper.New()
	v.SetEnvPrefix("SURF")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("main-width", defaultMainWidth)
	v.SetDefault("initial-route", defaultInitialRoute)
	v.SetDefault("sample-interval", defaultSampleInterval)
	v.SetDefault("header-shown", true)

	if configPath == "" {
		var err error
		configPath, err = defaultConfigPath()
		if err != nil {
			return cfg, err
		}
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// writeDefaultConfig emits a starter config file at path.
func writeDefaultConfig(path string) error {
	out, err := yaml.Marshal(map[string]any{
		"main-width":      defaultMainWidth,
		"initial-route":   defaultInitialRoute,
		"sample-interval": defaultSampleInterval.String(),
		"header-shown":    true,
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}
