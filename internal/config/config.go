package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override (NOTEBOOK_FILE, ...).
const EnvPrefix = "NOTEBOOK"

// Config holds the user-facing settings of the notebook CLI.
type Config struct {
	File     string `yaml:"file" mapstructure:"file"`
	ReadOnly bool   `yaml:"read_only" mapstructure:"read_only"`
	Verbose  bool   `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the settings used when nothing overrides them:
// notes.json in the working directory, writable, quiet logging.
func DefaultConfig() *Config {
	return &Config{
		File: "notes.json",
	}
}

// Dir returns the per-user configuration directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "notebook")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "notebook")
}

// Load resolves the configuration from, in order of precedence: flags bound
// on v, NOTEBOOK_* environment variables, the config file, and defaults.
//
// When configFile is empty, notebook.yaml is looked up in the working
// directory and then in Dir(); not finding one is fine. An explicit
// configFile must exist.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	cfg := DefaultConfig()

	v.SetDefault("file", cfg.File)
	v.SetDefault("read_only", cfg.ReadOnly)
	v.SetDefault("verbose", cfg.Verbose)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("notebook")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(Dir())
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if strings.TrimSpace(cfg.File) == "" {
		return nil, errors.New("config: file must not be empty")
	}
	cfg.File = expandHome(cfg.File)

	return cfg, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
