package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Install  InstallConfig  `mapstructure:"install"`
	OS       OSConfig       `mapstructure:"os"`
	Registry RegistryConfig `mapstructure:"registry"`
	UI       UIConfig       `mapstructure:"ui"`

	// File is the config file that was read, empty when none was found
	File string `mapstructure:"-"`
}

// LogConfig controls the log file
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// InstallConfig controls how install commands are run
type InstallConfig struct {
	DryRun bool `mapstructure:"dry_run"`
}

// OSConfig overrides OS family detection ("auto", "macos" or "linux")
type OSConfig struct {
	Family string `mapstructure:"family"`
}

// RegistryConfig points at an optional file of extra packages
type RegistryConfig struct {
	Extra string `mapstructure:"extra"`
}

// UIConfig holds presentation settings
type UIConfig struct {
	Plain bool `mapstructure:"plain"`
}

// flagKeys maps command line flags onto config keys
var flagKeys = map[string]string{
	"dry-run": "install.dry_run",
	"plain":   "ui.plain",
	"os":      "os.family",
}

// Dir returns the directory holding config.toml
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		home, herr := os.UserHomeDir()
		if herr != nil {
			home = "."
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "envinstall")
}

// DefaultLogFile returns the default log file path
func DefaultLogFile() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return filepath.Join(cacheDir, "envinstall", "envinstall.log")
}

// Load reads configuration from defaults, the config file, the environment
// (prefix ENVINSTALL_) and flags, later sources winning. path selects the
// config file explicitly; otherwise ENVINSTALL_CONFIG or the default
// location is used. Only an explicitly named file must exist.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("log.file", DefaultLogFile())
	v.SetDefault("log.level", "info")
	v.SetDefault("install.dry_run", false)
	v.SetDefault("os.family", "auto")
	v.SetDefault("registry.extra", "")
	v.SetDefault("ui.plain", false)

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv("ENVINSTALL_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(Dir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ENVINSTALL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	if cfg.Registry.Extra != "" {
		cfg.Registry.Extra = expandHome(cfg.Registry.Extra)
	}
	if cfg.Log.File != "" {
		cfg.Log.File = expandHome(cfg.Log.File)
	}
	return cfg, nil
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
