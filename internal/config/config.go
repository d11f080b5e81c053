package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"IntradayScope/internal/strategy"
)

// Config holds all application configuration.
type Config struct {
	Symbols    []string `yaml:"symbols"`
	DataSource struct {
		Provider  string  `yaml:"provider"` // yahoo, rest or mock
		BaseURL   string  `yaml:"base_url"`
		APIKey    string  `yaml:"api_key"`
		Period    string  `yaml:"period"`
		Interval  string  `yaml:"interval"`
		RateLimit float64 `yaml:"rate_limit"` // requests per second
	} `yaml:"data_source"`
	Indicators strategy.Params `yaml:"indicators"`
	Cache      struct {
		TTL       time.Duration `yaml:"ttl"`
		RedisAddr string        `yaml:"redis_addr"`
		RedisDB   int           `yaml:"redis_db"`
	} `yaml:"cache"`
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Scan struct {
		Cron    string `yaml:"cron"`
		Workers int    `yaml:"workers"`
	} `yaml:"scan"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Log struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy"`
}

// Load reads the .env file (if any) and the YAML file at path, then applies
// environment overrides and defaults.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

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

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SYMBOLS"); v != "" {
		c.Symbols = splitList(v)
	}
	if v := os.Getenv("DATA_PROVIDER"); v != "" {
		c.DataSource.Provider = v
	}
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		c.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_API_KEY"); v != "" {
		c.DataSource.APIKey = v
	}
	if v := os.Getenv("DATA_PERIOD"); v != "" {
		c.DataSource.Period = v
	}
	if v := os.Getenv("DATA_INTERVAL"); v != "" {
		c.DataSource.Interval = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		c.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		c.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		c.Proxy = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.RedisAddr = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("SCAN_CRON"); v != "" {
		c.Scan.Cron = v
	}
	if v := os.Getenv("SCAN_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Scan.Workers = n
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

func (c *Config) applyDefaults() {
	if len(c.Symbols) == 0 {
		c.Symbols = Nifty50()
	}
	if c.DataSource.Provider == "" {
		c.DataSource.Provider = "yahoo"
	}
	if c.DataSource.Period == "" {
		c.DataSource.Period = "1mo"
	}
	if c.DataSource.Interval == "" {
		c.DataSource.Interval = "15m"
	}
	if c.DataSource.RateLimit == 0 {
		c.DataSource.RateLimit = 2
	}
	c.Indicators = c.Indicators.WithDefaults()
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 5 * time.Minute
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Scan.Cron == "" {
		// every 15 minutes, 09:00-15:59 IST trading hours, Mon-Fri
		c.Scan.Cron = "0 */15 9-15 * * 1-5"
	}
	if c.Scan.Workers == 0 {
		c.Scan.Workers = 8
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if len(c.Symbols) == 0 {
		return fmt.Errorf("symbols must not be empty")
	}
	seen := make(map[string]struct{}, len(c.Symbols))
	for _, s := range c.Symbols {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("symbols must not contain blank entries")
		}
		if _, dup := seen[s]; dup {
			return fmt.Errorf("duplicate symbol %q", s)
		}
		seen[s] = struct{}{}
	}
	switch c.DataSource.Provider {
	case "yahoo", "mock":
	case "rest":
		if c.DataSource.BaseURL == "" {
			return fmt.Errorf("data_source.base_url is required for the rest provider")
		}
	default:
		return fmt.Errorf("unknown data_source.provider %q", c.DataSource.Provider)
	}
	if c.DataSource.RateLimit < 0 {
		return fmt.Errorf("data_source.rate_limit must not be negative")
	}
	if err := c.Indicators.Validate(); err != nil {
		return fmt.Errorf("indicators: %w", err)
	}
	if c.Scan.Workers < 0 {
		return fmt.Errorf("scan.workers must not be negative")
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	return nil
}

// TelegramEnabled reports whether a bot token and chat are configured.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}

// HasSymbol reports whether symbol belongs to the configured universe.
func (c *Config) HasSymbol(symbol string) bool {
	for _, s := range c.Symbols {
		if s == symbol {
			return true
		}
	}
	return false
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
