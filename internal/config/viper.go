// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Server struct {
		Addr      string `mapstructure:"addr" yaml:"addr"`
		JWTSecret string `mapstructure:"jwt_secret" yaml:"-"` // Never serialize the secret
		UsersFile string `mapstructure:"users_file" yaml:"users_file"`
	} `mapstructure:"server" yaml:"server"`

	Data struct {
		SnapshotFile string `mapstructure:"snapshot_file" yaml:"snapshot_file"`
		RulesFile    string `mapstructure:"rules_file" yaml:"rules_file"`
	} `mapstructure:"data" yaml:"data"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Dashboard struct {
		PageSize    int  `mapstructure:"page_size" yaml:"page_size"`
		GroupByWeek bool `mapstructure:"group_by_week" yaml:"group_by_week"`
	} `mapstructure:"dashboard" yaml:"dashboard"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.finance-dashboard")
	v.AddConfigPath(".finance-dashboard")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("LOOPER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
		// Config file not found or invalid is OK, we'll use defaults and env vars
	}

	// 5. Handle special case for the signing secret (always from env, not prefixed)
	if err := v.BindEnv("server.jwt_secret", "JWT_SECRET"); err != nil {
		fmt.Printf("Warning: failed to bind JWT_SECRET environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Server defaults
	v.SetDefault("server.addr", ":5000")
	v.SetDefault("server.jwt_secret", "")
	v.SetDefault("server.users_file", "")

	// Data defaults
	v.SetDefault("data.snapshot_file", "transactions.json")
	v.SetDefault("data.rules_file", "")

	// CSV defaults
	v.SetDefault("csv.delimiter", ",")

	// Dashboard defaults
	v.SetDefault("dashboard.page_size", 10)
	v.SetDefault("dashboard.group_by_week", false)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	// Validate CSV delimiter
	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	// Validate page size
	if config.Dashboard.PageSize < 1 {
		return fmt.Errorf("dashboard.page_size must be at least 1, got: %d", config.Dashboard.PageSize)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
