// Package config loads tool configuration from a YAML file and SAPGUI_*
// environment variables, with sensible defaults for running against the
// first connection of a locally running instance.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the resolved tool configuration.
type Config struct {
	Connection   int      `mapstructure:"connection"`    // connection index in the scripting engine
	Session      int      `mapstructure:"session"`       // session index within the connection
	PopupDismiss string   `mapstructure:"popup_dismiss"` // dismiss control pressed on blocking popups
	GridPaths    []string `mapstructure:"grid_paths"`    // extra grid probe paths, tried after the built-ins
	MaxRows      int      `mapstructure:"max_rows"`      // default row cap for harvests, 0 = all
	LockUI       bool     `mapstructure:"lock_ui"`       // hold the UI lock while workflows run
	Logger       Logger   `mapstructure:"logger"`
}

// Logger configures the structured logger.
type Logger struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // console or json
}

// SetDefaults seeds v with the default configuration.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("connection", 0)
	v.SetDefault("session", 0)
	v.SetDefault("popup_dismiss", "")
	v.SetDefault("grid_paths", []string{})
	v.SetDefault("max_rows", 0)
	v.SetDefault("lock_ui", false)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
}

// Load reads configuration from the given file (optional) and the
// environment. Environment variables override file values and use the
// SAPGUI prefix with underscores, e.g. SAPGUI_LOGGER_LEVEL=debug.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix("SAPGUI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("sapgui-cli")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/sapgui-cli")
		if err := v.ReadInConfig(); err != nil {
			// Running without a config file is the common case.
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
