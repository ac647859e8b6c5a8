package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"FundTrend/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	DataSource struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"data_source"`
	Watchlist struct {
		StateFile    string `yaml:"state_file"`
		DefaultCode  string `yaml:"default_code"`
		DefaultRange string `yaml:"default_range"`
	} `yaml:"watchlist"`
	Schedule struct {
		PrefetchCron string `yaml:"prefetch_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("FUND_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("FUND_FETCH_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			cfg.DataSource.TimeoutSeconds = secs
		}
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("WATCHLIST_FILE"); v != "" {
		cfg.Watchlist.StateFile = v
	}
	if v := os.Getenv("PREFETCH_CRON"); v != "" {
		cfg.Schedule.PrefetchCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.DataSource.BaseURL == "" {
		cfg.DataSource.BaseURL = "https://fund.eastmoney.com"
	}
	if cfg.DataSource.TimeoutSeconds <= 0 {
		cfg.DataSource.TimeoutSeconds = 8
	}
	if cfg.Watchlist.StateFile == "" {
		cfg.Watchlist.StateFile = "data/watchlist.json"
	}
	if cfg.Watchlist.DefaultCode == "" {
		cfg.Watchlist.DefaultCode = "110022"
	}
	if cfg.Watchlist.DefaultRange == "" {
		cfg.Watchlist.DefaultRange = string(model.Range6M)
	}
	if cfg.Schedule.PrefetchCron == "" {
		// Weekday evenings, after the day's net value is published.
		cfg.Schedule.PrefetchCron = "0 30 20 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/fundtrend.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are coherent.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.DataSource.BaseURL == "" {
		return fmt.Errorf("data_source.base_url is required")
	}
	if !model.RangeKey(c.Watchlist.DefaultRange).Valid() {
		return fmt.Errorf("watchlist.default_range %q is not a known range key", c.Watchlist.DefaultRange)
	}
	return nil
}
