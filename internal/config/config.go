package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		Primary struct {
			DSN string `mapstructure:"dsn"`
		} `mapstructure:"primary"`
	} `mapstructure:"database"`

	AI struct {
		Provider     string `mapstructure:"provider"` // "openai", "gemini" or "" to disable scoring
		OpenaiApiKey string `mapstructure:"openai_api_key"`
		GoogleApiKey string `mapstructure:"google_api_key"`
		Model        string `mapstructure:"model"`
	} `mapstructure:"ai"`

	Worker struct {
		PollIntervalMs int `mapstructure:"poll_interval_ms"`
		BatchSize      int `mapstructure:"batch_size"`
	} `mapstructure:"worker"`

	Email struct {
		SMTPHost      string  `mapstructure:"smtp_host"`
		SMTPPort      int     `mapstructure:"smtp_port"`
		SMTPUsername  string  `mapstructure:"smtp_username"`
		SMTPPassword  string  `mapstructure:"smtp_password"`
		From          string  `mapstructure:"from"`
		FromName      string  `mapstructure:"from_name"`
		RatePerSecond float64 `mapstructure:"rate_per_second"`
		Signature     string  `mapstructure:"signature"`
	} `mapstructure:"email"`

	Server struct {
		Addr          string `mapstructure:"addr"`
		Port          int    `mapstructure:"port"`
		TriggerSecret string `mapstructure:"trigger_secret"`
	} `mapstructure:"server"`

	Resume struct {
		FetchTimeoutMs int `mapstructure:"fetch_timeout_ms"`
	} `mapstructure:"resume"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("worker.poll_interval_ms", 30000)
	viper.SetDefault("worker.batch_size", 5)
	viper.SetDefault("email.rate_per_second", 2)
	viper.SetDefault("email.smtp_port", 587)
	viper.SetDefault("server.addr", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("resume.fetch_timeout_ms", 10000)

	viper.AutomaticEnv()

	// Secrets usually arrive via the environment rather than the
	// config file.
	viper.BindEnv("ai.openai_api_key", "OPENAI_API_KEY")
	viper.BindEnv("ai.google_api_key", "GEMINI_API_KEY")
	viper.BindEnv("email.smtp_password", "SMTP_PASSWORD")
	viper.BindEnv("server.trigger_secret", "TRIGGER_SECRET")
	viper.BindEnv("database.primary.dsn", "DATABASE_URL")

	if err := viper.ReadInConfig(); err != nil {
		// Missing config file is fine; env vars and defaults can
		// carry a full configuration.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
