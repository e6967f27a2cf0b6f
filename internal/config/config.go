// Package config loads CLI and server settings from file, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. BRANDTOKENS_LOG_LEVEL.
const EnvPrefix = "BRANDTOKENS"

// Config holds every setting of the brand-tokens CLI.
type Config struct {
	Debug   bool          `mapstructure:"debug"`
	Log     LogConfig     `mapstructure:"log"`
	Format  string        `mapstructure:"format"`
	Server  ServerConfig  `mapstructure:"server"`
	Extract ExtractConfig `mapstructure:"extract"`
	Figma   FigmaConfig   `mapstructure:"figma"`
}

// LogConfig controls the console and file log sinks.
type LogConfig struct {
	Level string `mapstructure:"level"` // "debug" or "info"
	Dir   string `mapstructure:"dir"`   // empty = console only
}

// ServerConfig controls the HTTP tool server.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// ExtractConfig controls batch extraction.
type ExtractConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// FigmaConfig holds Figma API credentials.
type FigmaConfig struct {
	Token string `mapstructure:"token"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log:     LogConfig{Level: "info"},
		Format:  "structured",
		Server:  ServerConfig{Addr: ":8080"},
		Extract: ExtractConfig{Concurrency: 4},
	}
}

// New returns a viper instance wired with defaults, the environment prefix
// and the config search paths (./brand-tokens.* then $HOME/brand-tokens.*).
func New() *viper.Viper {
	v := viper.New()

	def := Default()
	v.SetDefault("debug", def.Debug)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.dir", def.Log.Dir)
	v.SetDefault("format", def.Format)
	v.SetDefault("server.addr", def.Server.Addr)
	v.SetDefault("extract.concurrency", def.Extract.Concurrency)
	v.SetDefault("figma.token", def.Figma.Token)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("brand-tokens")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")

	return v
}

// Load reads the config file (configFile, or the search paths when empty)
// and decodes the merged settings. A missing config file is not an error.
func Load(v *viper.Viper, configFile string) (Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Debug {
		cfg.Log.Level = "debug"
	}
	if cfg.Extract.Concurrency < 1 {
		cfg.Extract.Concurrency = 1
	}

	return cfg, nil
}
