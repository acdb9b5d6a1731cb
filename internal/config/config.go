package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
	Keys     KeysConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AccentColor string
	// WrapOverrides pins the wrap policy per role, e.g. "tablist" -> false.
	// Roles absent from the map keep their defaults.
	WrapOverrides map[string]bool
}

// KeysConfig remaps action keybindings, e.g. "jump" -> ["g"].
type KeysConfig struct {
	Actions map[string][]string
}

// Load reads configuration from file and env. Env var overrides use prefix SELECTKIT_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "selectkit", "selectkit.db"))
	v.SetDefault("ui.accent_color", "#89b4fa")
	v.SetDefault("ui.wrap_overrides", map[string]bool{})
	v.SetDefault("keys.actions", map[string][]string{})

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SELECTKIT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "selectkit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SELECTKIT")
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
// if needed. Used by the settings tab for accepted preferences.
func Save(cfg Config) error {
	path := os.Getenv("SELECTKIT_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "selectkit", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.accent_color", cfg.UI.AccentColor)
	v.Set("ui.wrap_overrides", cfg.UI.WrapOverrides)
	v.Set("keys.actions", cfg.Keys.Actions)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
