package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if err := c.Store.validate(); err != nil {
		return err
	}

	inc, err := decimal.NewFromString(c.Bidding.MinIncrement)
	if err != nil {
		return fmt.Errorf("bidding.min_increment: %w", err)
	}
	if !inc.IsPositive() {
		return errors.New("bidding.min_increment must be > 0")
	}

	if c.Settlement.Interval <= 0 {
		return errors.New("settlement.interval must be > 0")
	}
	if c.Settlement.Timeout <= 0 {
		return errors.New("settlement.timeout must be > 0")
	}
	if c.Auction.Window <= 0 {
		return errors.New("auction.window must be > 0")
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}

func (s *StoreConfig) validate() error {
	switch s.Backend {
	case BackendMemory:
		return nil
	case BackendRemote:
	default:
		return fmt.Errorf("store.backend must be %q or %q, got %q", BackendRemote, BackendMemory, s.Backend)
	}

	if s.BaseURL == "" {
		return errors.New("store.base_url is required for the remote backend")
	}
	u, err := url.Parse(s.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("store.base_url must be an absolute URL, got %q", s.BaseURL)
	}
	if s.Timeout <= 0 {
		return errors.New("store.timeout must be > 0")
	}
	if s.UseAuth && s.TokenFile == "" {
		return errors.New("store.token_file is required when store.use_auth is set")
	}
	return nil
}

// MinIncrement returns bidding.min_increment as a decimal. Call after Validate.
func (c *Config) MinIncrement() decimal.Decimal {
	return decimal.RequireFromString(c.Bidding.MinIncrement)
}
