// Package config loads user defaults for the generator from a TOML file
// and INIT_PROJECT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jakoblorz/init-project/internal/models"
)

// Environment variable prefix, e.g. INIT_PROJECT_TOOLS_NPM.
const envPrefix = "INIT_PROJECT"

const (
	appDir   = "init-project"
	fileName = "config.toml"
)

// Config is the resolved configuration.
type Config struct {
	Defaults  Defaults  `mapstructure:"defaults"`
	Tools     Tools     `mapstructure:"tools"`
	Preflight Preflight `mapstructure:"preflight"`

	// File is the config file that was read, empty if none existed.
	File string `mapstructure:"-"`
}

// Defaults prefill the interactive prompts.
type Defaults struct {
	TypeScript bool   `mapstructure:"typescript"`
	Lint       bool   `mapstructure:"lint"`
	Database   string `mapstructure:"database"`
	Docker     bool   `mapstructure:"docker"`
}

// Tools names the package manager executables.
type Tools struct {
	NPM string `mapstructure:"npm"`
	NPX string `mapstructure:"npx"`
}

// Preflight controls the tool check run before generation.
type Preflight struct {
	Enabled bool   `mapstructure:"enabled"`
	MinNode string `mapstructure:"min_node"`
}

// Loader reads configuration into a private viper instance.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a Loader with defaults and environment bindings set up.
func NewLoader() *Loader {
	v := viper.New()

	v.SetDefault("defaults.typescript", false)
	v.SetDefault("defaults.lint", true)
	v.SetDefault("defaults.database", string(models.DatabaseMongoDB))
	v.SetDefault("defaults.docker", false)
	v.SetDefault("tools.npm", "npm")
	v.SetDefault("tools.npx", "npx")
	v.SetDefault("preflight.enabled", true)
	v.SetDefault("preflight.min_node", "v14.0.0")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// Load reads configFile, or the default location when it is empty.
// A missing default file is not an error; a missing explicit one is.
func (l *Loader) Load(configFile string) (*Config, error) {
	explicit := configFile != ""
	if !explicit {
		path, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		configFile = path
	}

	l.v.SetConfigFile(configFile)
	l.v.SetConfigType("toml")

	read := true
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !(errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)) {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
		read = false
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if read {
		cfg.File = configFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	if _, err := models.ParseDatabase(c.Defaults.Database); err != nil {
		return fmt.Errorf("invalid defaults.database: %w", err)
	}
	if strings.TrimSpace(c.Tools.NPM) == "" || strings.TrimSpace(c.Tools.NPX) == "" {
		return fmt.Errorf("tools.npm and tools.npx cannot be empty")
	}
	return nil
}

// DefaultOptions returns the option set the prompts start from.
func (c *Config) DefaultOptions() models.Options {
	db, err := models.ParseDatabase(c.Defaults.Database)
	if err != nil {
		db = models.DatabaseMongoDB
	}
	return models.Options{
		TypeScript:      c.Defaults.TypeScript,
		LintAndPrettier: c.Defaults.Lint,
		DB:              db,
		Docker:          c.Defaults.Docker,
	}
}

// DefaultPath is $XDG_CONFIG_HOME/init-project/config.toml, falling back
// to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appDir, fileName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", appDir, fileName), nil
}
