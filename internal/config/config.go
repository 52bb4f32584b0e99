package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/beacon-labs/beacon/internal/branding"
	"github.com/beacon-labs/beacon/internal/collection"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys recognized in the global defaults file.
const (
	KeyAuthor   = "author"
	KeyEmail    = "author_email"
	KeyGithubID = "author_github_id"
)

// Dir returns the path to the global config directory (~/.beacon/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.beacon/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Seed overlays the configured default identity onto a fresh sidecar config.
// Unset keys leave the placeholder values in place.
func Seed(cfg *collection.Config) {
	if v := Get(KeyAuthor); v != "" {
		cfg.Author = v
	}
	if v := Get(KeyEmail); v != "" {
		cfg.AuthorEmail = v
	}
	if v := Get(KeyGithubID); v != "" {
		cfg.AuthorGithubID = v
	}
}
