package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Provider.BaseURL == "" {
		return errors.New("provider.base_url is required")
	}
	if c.Provider.LookbackDays < 1 {
		return fmt.Errorf("provider.lookback_days must be >= 1, got %d", c.Provider.LookbackDays)
	}

	if err := c.Database.validate("database"); err != nil {
		return err
	}

	if len(c.Pipeline.Tickers) == 0 {
		return errors.New("pipeline.tickers must list at least one symbol")
	}
	for i, t := range c.Pipeline.Tickers {
		if t == "" {
			return fmt.Errorf("pipeline.tickers[%d] is empty", i)
		}
	}
	if c.Pipeline.Interval <= 0 {
		return errors.New("pipeline.interval must be positive")
	}

	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
