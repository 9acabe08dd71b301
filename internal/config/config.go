package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Backend names accepted by store.backend.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config is the top-level configuration structure.
type Config struct {
	Store   StoreConfig   `mapstructure:"store"`
	Logging LoggingConfig `mapstructure:"logging"`
	// Locale is a BCP 47 tag used to format history dates.
	Locale string `mapstructure:"locale"`
	// ExportDir is where profile exports are written.
	ExportDir string `mapstructure:"export_dir"`
	// Splash shows the animated welcome screen when the TUI starts.
	Splash bool `mapstructure:"splash"`
}

// StoreConfig selects and configures the key-value medium.
type StoreConfig struct {
	Backend   string `mapstructure:"backend"`
	Path      string `mapstructure:"path"` // SQLite file; empty means the default data path
	RedisAddr string `mapstructure:"redis_addr"`
	RedisDB   int    `mapstructure:"redis_db"`
	RedisPass string `mapstructure:"redis_password"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// LoggingConfig holds settings for the logger.
type LoggingConfig struct {
	Mode  string `mapstructure:"mode"`
	Level string `mapstructure:"level"`
	// File receives logs while the TUI owns the terminal. Empty means
	// <data dir>/valodiag.log.
	File string `mapstructure:"file"`
}

// setDefaults sets the default values for the configuration.
func setDefaults(v *viper.Viper) {
	v.SetDefault("store.backend", BackendSQLite)
	v.SetDefault("store.path", "")
	v.SetDefault("store.redis_addr", "localhost:6379")
	v.SetDefault("store.redis_db", 0)
	v.SetDefault("store.redis_password", "")
	v.SetDefault("store.key_prefix", "valodiag:")

	v.SetDefault("logging.mode", "dev")
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.file", "")

	v.SetDefault("locale", "id-ID")
	v.SetDefault("export_dir", ".")
	v.SetDefault("splash", true)
}

// New returns a viper instance with defaults and environment binding
// (VALODIAG_STORE_BACKEND, VALODIAG_LOCALE, ...). Callers may bind flags to
// it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("VALODIAG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configFile (or valodiag.yaml from the default config
// directories when empty) into v and decodes the result. A missing default
// config file is not an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("valodiag")
		v.SetConfigType("yaml")
		if dir, err := defaultConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendSQLite, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("invalid store.backend %q: must be sqlite, redis or memory", c.Store.Backend)
	}
	return nil
}

// defaultConfigDir returns $XDG_CONFIG_HOME/valodiag or ~/.config/valodiag.
func defaultConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "valodiag"), nil
}
