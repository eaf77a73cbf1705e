package config

import (
	"errors"
	"fmt"
)

func (c *Config) Validate() error {
	if c.Database.Primary.DSN == "" {
		return errors.New("database.primary.dsn is required")
	}

	switch c.AI.Provider {
	case "", "openai", "gemini":
	default:
		return fmt.Errorf("ai.provider must be \"openai\", \"gemini\" or empty, got %q", c.AI.Provider)
	}

	if c.Worker.PollIntervalMs <= 0 {
		return errors.New("worker.poll_interval_ms must be a positive integer")
	}
	if c.Worker.BatchSize <= 0 {
		return errors.New("worker.batch_size must be a positive integer")
	}

	if c.Email.RatePerSecond <= 0 {
		return errors.New("email.rate_per_second must be positive")
	}
	// SMTP settings are optional as a group; if a host is given the
	// sender address must be too.
	if c.Email.SMTPHost != "" && c.Email.From == "" {
		return errors.New("email.from is required when email.smtp_host is set")
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port (%d) must be between 1 and 65535", c.Server.Port)
	}

	if c.Resume.FetchTimeoutMs <= 0 {
		return errors.New("resume.fetch_timeout_ms must be a positive integer")
	}

	return nil
}
