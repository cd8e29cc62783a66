// Package config loads settings from defaults, a TOML file and TILEGRID_ variables
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides
const EnvPrefix = "tilegrid"

// Config holds every runtime setting
type Config struct {
	Layout     string `mapstructure:"layout"`
	Sheet      string `mapstructure:"sheet"`
	Theme      string `mapstructure:"theme"`
	TileWidth  int    `mapstructure:"tile-width"`
	TileHeight int    `mapstructure:"tile-height"`
	SpacingX   int    `mapstructure:"spacing-x"`
	SpacingY   int    `mapstructure:"spacing-y"`
	Padding    int    `mapstructure:"padding"`
	Inset      int    `mapstructure:"inset"`
	ShowHidden bool   `mapstructure:"show-hidden"`
	Mouse      bool   `mapstructure:"mouse"`
	Watch      bool   `mapstructure:"watch"`
	Restore    bool   `mapstructure:"restore"`
	History    int    `mapstructure:"history"`
	DBPath     string `mapstructure:"db"`
	LogFile    string `mapstructure:"log-file"`
	LogLevel   string `mapstructure:"log-level"`
}

// SetDefaults registers the default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("layout", "")
	v.SetDefault("sheet", "")
	v.SetDefault("theme", "default")
	v.SetDefault("tile-width", 14)
	v.SetDefault("tile-height", 5)
	v.SetDefault("spacing-x", 1)
	v.SetDefault("spacing-y", 1)
	v.SetDefault("padding", 1)
	v.SetDefault("inset", 1)
	v.SetDefault("show-hidden", false)
	v.SetDefault("mouse", true)
	v.SetDefault("watch", true)
	v.SetDefault("restore", true)
	v.SetDefault("history", 5)
	v.SetDefault("db", "")
	v.SetDefault("log-file", "")
	v.SetDefault("log-level", "info")
}

// New creates a viper instance with defaults and environment overrides.
// When cfgFile is empty, config.toml is searched in ConfigDir and ".".
func New(cfgFile string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if dir := ConfigDir(); dir != "" {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Read loads the config file into v. A missing default config file is not an error.
func Read(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// Decode converts the merged settings into a Config
func Decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = StateDBPath()
	}
	if cfg.LogFile == "" {
		cfg.LogFile = LogFilePath()
	}
	return cfg, nil
}

// Load reads the config file and decodes it
func Load(cfgFile string) (Config, error) {
	v := New(cfgFile)
	if err := Read(v); err != nil {
		return Config{}, err
	}
	return Decode(v)
}
