// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Model struct {
		HiddenUnits  int     `mapstructure:"hidden_units" yaml:"hidden_units"`
		Epochs       int     `mapstructure:"epochs" yaml:"epochs"`
		BatchSize    int     `mapstructure:"batch_size" yaml:"batch_size"`
		DropoutRate  float64 `mapstructure:"dropout_rate" yaml:"dropout_rate"`
		LearningRate float64 `mapstructure:"learning_rate" yaml:"learning_rate"`
	} `mapstructure:"model" yaml:"model"`

	OCR struct {
		Endpoint       string `mapstructure:"endpoint" yaml:"endpoint"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		APIKey         string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ocr" yaml:"ocr"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.spendtrack")
	v.AddConfigPath(".spendtrack")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("SPENDTRACK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// 5. The OCR key is always taken from the environment, not the config file
	if err := v.BindEnv("ocr.api_key", "SPENDTRACK_OCR_API_KEY", "OCR_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind OCR API key environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns a Config populated with the built-in defaults, without
// consulting config files or the environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		// Defaults are static and always unmarshal cleanly.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &config
}

// setDefaults sets default configuration values. The model defaults mirror the
// network the categorizer was originally tuned with.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("model.hidden_units", 128)
	v.SetDefault("model.epochs", 50)
	v.SetDefault("model.batch_size", 4)
	v.SetDefault("model.dropout_rate", 0.5)
	v.SetDefault("model.learning_rate", 0.001)

	v.SetDefault("ocr.endpoint", "https://api.ocr.space/parse/image")
	v.SetDefault("ocr.timeout_seconds", 30)
}

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Model.HiddenUnits < 1 {
		return fmt.Errorf("model.hidden_units must be positive, got: %d", config.Model.HiddenUnits)
	}
	if config.Model.Epochs < 1 {
		return fmt.Errorf("model.epochs must be positive, got: %d", config.Model.Epochs)
	}
	if config.Model.BatchSize < 1 {
		return fmt.Errorf("model.batch_size must be positive, got: %d", config.Model.BatchSize)
	}
	if config.Model.DropoutRate < 0.0 || config.Model.DropoutRate >= 1.0 {
		return fmt.Errorf("model.dropout_rate must be in [0.0, 1.0), got: %f", config.Model.DropoutRate)
	}
	if config.Model.LearningRate <= 0.0 {
		return fmt.Errorf("model.learning_rate must be positive, got: %f", config.Model.LearningRate)
	}

	if config.OCR.TimeoutSeconds < 1 || config.OCR.TimeoutSeconds > 300 {
		return fmt.Errorf("ocr.timeout_seconds must be between 1 and 300, got: %d", config.OCR.TimeoutSeconds)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct.
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
