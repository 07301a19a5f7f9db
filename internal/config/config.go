package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centralizes service configuration.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Empty or "test" disables the hosted model; answers come from the
	// deterministic fallback engine.
	LLMAPIKey    string `env:"LLM_API_KEY"`
	LLMBaseURL   string `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel     string `env:"LLM_MODEL" envDefault:"gpt-5.2"`
	LLMMaxTokens int    `env:"LLM_MAX_TOKENS" envDefault:"700"`

	Timezone         string `env:"TIMEZONE" envDefault:"Asia/Seoul"`
	DefaultRangeDays int    `env:"DEFAULT_RANGE_DAYS" envDefault:"30"`

	// Keyword sets for resolving who a question is about. The partner list
	// carries the household nicknames as data, not code.
	SelfKeywords    []string `env:"SELF_KEYWORDS" envSeparator:"," envDefault:"나,내,저,제"`
	PartnerKeywords []string `env:"PARTNER_KEYWORDS" envSeparator:"," envDefault:"너,네,상대,창창,창희"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	AskRateLimit         int `env:"ASK_RATE_LIMIT" envDefault:"20"`
	AskRateWindowMinutes int `env:"ASK_RATE_WINDOW_MINUTES" envDefault:"10"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LLMEnabled reports whether a hosted model should be used at all.
func (c *Config) LLMEnabled() bool {
	return c.LLMAPIKey != "" && c.LLMAPIKey != "test"
}

// Location resolves the configured timezone, falling back to a fixed UTC+9
// zone when the tz database is unavailable.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}
