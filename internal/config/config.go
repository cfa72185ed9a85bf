// Package config reads the optional config.yaml next to the database.
// Command-line flags take precedence over everything loaded here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/julianstephens/habitual/internal/constants"
)

const (
	fileName = "config"
	fileType = "yaml"
	fileExt  = "config.yaml"

	KeyDatabase   = "database"
	KeyDebug      = "debug"
	KeyLogDir     = "log_dir"
	KeySeedOnInit = "seed_on_init"
)

const defaultConfigYAML = `# habitual configuration

# SQLite file path, a password-less PostgreSQL URL, or "keyring"
# database: ~/.config/habitual/habitual.db

# Also log to stderr at debug level
debug: false

# Directory for habitual.log (defaults to <config dir>/logs)
# log_dir:

# Install the demo account when running init
seed_on_init: false
`

type Config struct {
	Database   string
	Debug      bool
	LogDir     string
	SeedOnInit bool
	// File is the config.yaml that was read, empty when none exists
	File string
}

// Load reads config.yaml from configDir. A missing file is not an error.
// HABITUAL_DATABASE, HABITUAL_DEBUG, HABITUAL_LOG_DIR and HABITUAL_SEED_ON_INIT
// override values from the file.
func Load(configDir string) (Config, error) {
	v := viper.New()
	v.SetDefault(KeyDatabase, "")
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyLogDir, "")
	v.SetDefault(KeySeedOnInit, false)

	v.SetConfigName(fileName)
	v.SetConfigType(fileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(strings.ToUpper(constants.AppName))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return Config{
		Database:   v.GetString(KeyDatabase),
		Debug:      v.GetBool(KeyDebug),
		LogDir:     v.GetString(KeyLogDir),
		SeedOnInit: v.GetBool(KeySeedOnInit),
		File:       v.ConfigFileUsed(),
	}, nil
}

// WriteDefault creates a commented config.yaml in configDir unless one exists.
// It reports whether a file was written.
func WriteDefault(configDir string) (bool, error) {
	path := filepath.Join(configDir, fileExt)

	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return false, fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o600); err != nil {
		return false, fmt.Errorf("write config file: %w", err)
	}
	return true, nil
}

// Dir returns the directory holding the database or, for a PostgreSQL
// target, the user's habitual config directory.
func Dir(target string) string {
	if target == "" || target == "keyring" || strings.Contains(target, "://") || strings.Contains(target, "=") {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".", "."+constants.AppName)
		}
		return filepath.Join(home, ".config", constants.AppName)
	}
	return filepath.Dir(ExpandHome(target))
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
