package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultPort               = 8080
	DefaultBackend            = BackendMemory
	DefaultStoreTimeout       = 10 * time.Second
	DefaultPrizePath          = "/prizeSink"
	DefaultMinIncrement       = "1"
	DefaultSettlementInterval = 60 * time.Second
	DefaultSettlementTimeout  = 10 * time.Second
	DefaultAuctionWindow      = 48 * time.Hour
	DefaultLogLevel           = "info"
)

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}

	// Store defaults
	if c.Store.Backend == "" {
		c.Store.Backend = DefaultBackend
	}
	if c.Store.Timeout == 0 {
		c.Store.Timeout = DefaultStoreTimeout
	}
	if c.Store.PrizePath == "" {
		c.Store.PrizePath = DefaultPrizePath
	}

	if c.Bidding.MinIncrement == "" {
		c.Bidding.MinIncrement = DefaultMinIncrement
	}

	// Settlement defaults
	if c.Settlement.Interval == 0 {
		c.Settlement.Interval = DefaultSettlementInterval
	}
	if c.Settlement.Timeout == 0 {
		c.Settlement.Timeout = DefaultSettlementTimeout
	}

	if c.Auction.Window == 0 {
		c.Auction.Window = DefaultAuctionWindow
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}
