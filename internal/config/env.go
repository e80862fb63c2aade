package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type AppConfig struct {
	Port     string `env:"APP_PORT" envDefault:"3000"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogDir   string `env:"LOG_DIR" envDefault:"./storage/logs"`

	RedisAddress  string `env:"REDIS_ADDRESS"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"50"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"100"`

	ElevenLabsAPIKey  string        `env:"ELEVENLABS_API_KEY"`
	ElevenLabsVoiceID string        `env:"ELEVENLABS_VOICE_ID"`
	NarrationCacheTTL time.Duration `env:"NARRATION_CACHE_TTL" envDefault:"24h"`

	CORSAllowOrigins string `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`
}

// LoadAppConfig reads the configuration from the environment.
func LoadAppConfig() (*AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}
	return &cfg, nil
}

// NarrationEnabled reports whether server-side narration can be generated.
func (c *AppConfig) NarrationEnabled() bool {
	return c.ElevenLabsAPIKey != "" && c.ElevenLabsVoiceID != ""
}
