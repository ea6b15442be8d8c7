package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// HistoryCSV is the metering log the pipeline reads. It is the only
	// durable store and is treated as read-only.
	HistoryCSV string `yaml:"history_csv"`

	Server  ServerConfig  `yaml:"server"`
	Refresh RefreshConfig `yaml:"refresh"`

	// TailRows bounds the raw-data view returned by the history endpoint.
	TailRows int `yaml:"tail_rows"`
}

type ServerConfig struct {
	ListenAddr     string   `yaml:"listen_addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type RefreshConfig struct {
	// Seconds between full pipeline rebuilds. The dataset is reconstructed
	// from scratch each pass; there is no incremental update.
	IntervalSeconds int `yaml:"interval_seconds"`
}

// Interval returns the refresh period as a duration.
func (r RefreshConfig) Interval() time.Duration {
	return time.Duration(r.IntervalSeconds) * time.Second
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		HistoryCSV: "energy_history.csv",
		Server: ServerConfig{
			ListenAddr:     ":8080",
			AllowedOrigins: []string{"*"},
		},
		Refresh:  RefreshConfig{IntervalSeconds: 60},
		TailRows: 100,
	}
}

// Load reads, defaults and validates a config file. An empty path yields the
// defaults unchanged.
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(raw, c); err != nil {
			return nil, err
		}
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.HistoryCSV == "" {
		c.HistoryCSV = d.HistoryCSV
	}
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = d.Server.ListenAddr
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = d.Server.AllowedOrigins
	}
	if c.Refresh.IntervalSeconds == 0 {
		c.Refresh.IntervalSeconds = d.Refresh.IntervalSeconds
	}
	if c.TailRows == 0 {
		c.TailRows = d.TailRows
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.HistoryCSV == "" {
		return errors.New("history_csv is required")
	}
	if c.Refresh.IntervalSeconds < 1 {
		return fmt.Errorf("refresh.interval_seconds too small: %d (minimum 1)", c.Refresh.IntervalSeconds)
	}
	if c.TailRows < 0 {
		return errors.New("tail_rows must be >= 0")
	}
	return nil
}
