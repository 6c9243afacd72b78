package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Development DevelopmentConfig `mapstructure:"development"`
	Analysis    AnalysisConfig    `mapstructure:"analysis"`
	Games       GamesConfig       `mapstructure:"games"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr is the host:port the HTTP server listens on.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DevelopmentConfig struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
}

type AnalysisConfig struct {
	Workers      int `mapstructure:"workers"`       // 0 means one per CPU
	DefaultDepth int `mapstructure:"default_depth"`
}

type GamesConfig struct {
	MaxActive int `mapstructure:"max_active"` // 0 means unlimited
}

// Load reads config.yaml from the working directory or ./config, then
// applies CHESSRULES_* environment overrides. A missing file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix("CHESSRULES")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("development.debug", false)
	v.SetDefault("development.log_level", "info")
	v.SetDefault("analysis.workers", 0)
	v.SetDefault("analysis.default_depth", 3)
	v.SetDefault("games.max_active", 1000)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Analysis.DefaultDepth < 0 {
		return nil, fmt.Errorf("analysis.default_depth must not be negative, got %d", cfg.Analysis.DefaultDepth)
	}
	return &cfg, nil
}
