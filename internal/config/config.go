package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI   UIConfig
	Demo DemoConfig
}

// UIConfig holds widget timing and presentation settings.
type UIConfig struct {
	FlashTimeoutMs int `mapstructure:"flash_timeout_ms"`
	MenuHideMs     int `mapstructure:"menu_hide_ms"`
	MinPasswordLen int `mapstructure:"min_password_len"`
}

// DemoConfig drives the in-process responder that stands in for the
// backend. Nothing here is persisted or sent anywhere.
type DemoConfig struct {
	Email          string `mapstructure:"email"`
	Password       string `mapstructure:"password"`
	MaxAttempts    int    `mapstructure:"max_attempts"`
	LockoutSeconds int    `mapstructure:"lockout_seconds"`
}

// FlashTimeout returns the transient-flash lifetime as a duration.
func (u UIConfig) FlashTimeout() time.Duration {
	return time.Duration(u.FlashTimeoutMs) * time.Millisecond
}

// MenuHideDelay returns how long a dropdown stays open after focus leaves
// the menubar.
func (u UIConfig) MenuHideDelay() time.Duration {
	return time.Duration(u.MenuHideMs) * time.Millisecond
}

// Load reads configuration from file and env. Env var overrides use prefix LOCKWATCH_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.flash_timeout_ms", 5000)
	v.SetDefault("ui.menu_hide_ms", 2000)
	v.SetDefault("ui.min_password_len", 8)
	v.SetDefault("demo.email", "demo@example.com")
	v.SetDefault("demo.password", "correct-horse")
	v.SetDefault("demo.max_attempts", 5)
	v.SetDefault("demo.lockout_seconds", 125)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("LOCKWATCH_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "lockwatch"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LOCKWATCH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory
// if needed. Used by the --write-config flag so a fresh machine gets a
// file to edit.
func Save(cfg Config) error {
	path := os.Getenv("LOCKWATCH_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "lockwatch", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.flash_timeout_ms", cfg.UI.FlashTimeoutMs)
	v.Set("ui.menu_hide_ms", cfg.UI.MenuHideMs)
	v.Set("ui.min_password_len", cfg.UI.MinPasswordLen)
	v.Set("demo.email", cfg.Demo.Email)
	v.Set("demo.password", cfg.Demo.Password)
	v.Set("demo.max_attempts", cfg.Demo.MaxAttempts)
	v.Set("demo.lockout_seconds", cfg.Demo.LockoutSeconds)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
