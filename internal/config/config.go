// Package config loads the auction service configuration from YAML.
package config

import "time"

// Config is the root configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Store      StoreConfig      `yaml:"store"`
	Bidding    BiddingConfig    `yaml:"bidding"`
	Settlement SettlementConfig `yaml:"settlement"`
	Auction    AuctionConfig    `yaml:"auction"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// StoreConfig selects and configures the persistence backend.
type StoreConfig struct {
	Backend   string        `yaml:"backend"`    // "remote" or "memory"
	BaseURL   string        `yaml:"base_url"`   // remote REST store, e.g. https://xxxx.mokky.dev
	Timeout   time.Duration `yaml:"timeout"`    // per request
	UseAuth   bool          `yaml:"use_auth"`   // attach the bearer token to store requests
	TokenFile string        `yaml:"token_file"` // where the bearer token is kept when use_auth is set
	PrizePath string        `yaml:"prize_path"` // prize sink collection path
}

// BiddingConfig holds bid validation settings.
type BiddingConfig struct {
	MinIncrement string `yaml:"min_increment"` // decimal string
}

// SettlementConfig holds sweeper settings.
type SettlementConfig struct {
	Enabled  *bool         `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
	Timeout  time.Duration `yaml:"timeout"`
}

// IsEnabled reports whether the sweeper should run. It defaults to true.
func (s SettlementConfig) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// AuctionConfig holds lot creation settings.
type AuctionConfig struct {
	Window time.Duration `yaml:"window"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Backends
const (
	BackendRemote = "remote"
	BackendMemory = "memory"
)
