package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Gantt board specifics
	Gantt     GanttConfig
	Sessions  SessionsConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GanttConfig points at the source workbook the service charts.
type GanttConfig struct {
	SourcePath string
	SheetName  string
}

// SessionsConfig bounds how many concurrent board sessions stay live.
type SessionsConfig struct {
	Max int
}

// RateLimitConfig throttles the expensive upload/export routes.
type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Gantt board
	cfg.Gantt.SourcePath = viper.GetString("gantt.source_path")
	cfg.Gantt.SheetName = viper.GetString("gantt.sheet_name")
	if sourcePath := viper.GetString("gantt_source_path"); sourcePath != "" {
		cfg.Gantt.SourcePath = sourcePath
	}

	cfg.Sessions.Max = viper.GetInt("sessions.max")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("gantt.source_path", "./data/tasks.xlsx")
	viper.SetDefault("gantt.sheet_name", "Sheet1")
	viper.SetDefault("sessions.max", 128)
	viper.SetDefault("rate_limit.per_min", 30)
}

func (cfg *Config) validate() error {
	if cfg.Gantt.SourcePath == "" {
		return fmt.Errorf("gantt.source_path is required")
	}
	if cfg.Sessions.Max <= 0 {
		return fmt.Errorf("sessions.max must be positive, got %d", cfg.Sessions.Max)
	}
	if cfg.RateLimit.PerMin <= 0 {
		return fmt.Errorf("rate_limit.per_min must be positive, got %d", cfg.RateLimit.PerMin)
	}
	return nil
}
