// SPDX-License-Identifier: MPL-2.0

// Package config loads the application-level podforge configuration:
// defaults, an optional TOML config file, and PODFORGE_* environment
// variables, in ascending precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"podforge/internal/issue"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "podforge"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
	// EnvPrefix prefixes every environment override (e.g.
	// PODFORGE_REGISTRY_PASSWORD).
	EnvPrefix = "PODFORGE"
)

// configFilePathOverride lets the --config flag and tests bypass the
// platform config directory lookup.
var configFilePathOverride string

// SetConfigFilePathOverride forces loading from a specific config file.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
}

// ConfigDir returns the podforge configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, Linux and others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the configuration. A missing config file is not an error;
// defaults and the environment still apply.
func Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("podman.binary", defaults.Podman.Binary)
	v.SetDefault("podman.url", defaults.Podman.URL)
	v.SetDefault("podman.root", defaults.Podman.Root)
	v.SetDefault("podman.tls_verify", defaults.Podman.TLSVerify)
	v.SetDefault("registry.host", defaults.Registry.Host)
	v.SetDefault("registry.username", defaults.Registry.Username)
	v.SetDefault("registry.password", "")
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFilePathOverride != "" {
		if !fileExists(configFilePathOverride) {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(configFilePathOverride).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				Wrap(fmt.Errorf("config file not found: %s", configFilePathOverride)).
				BuildError()
		}
		v.SetConfigFile(configFilePathOverride)
		if err := v.ReadInConfig(); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(configFilePathOverride).
				WithSuggestion("Check that the file contains valid TOML syntax").
				Wrap(err).
				BuildError()
		}
	} else {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		if cfgDir, err := ConfigDir(); err == nil {
			v.AddConfigPath(cfgDir)
		}
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			// Defaults apply when no file is found at all.
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, issue.NewErrorContext().
					WithOperation("load configuration").
					WithResource(v.ConfigFileUsed()).
					WithSuggestion("Check that the file contains valid TOML syntax").
					Wrap(err).
					BuildError()
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("validate configuration").
			WithSuggestion(`podman.tls_verify must be "", "true" or "false"`).
			Wrap(err).
			BuildError()
	}

	return &cfg, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
