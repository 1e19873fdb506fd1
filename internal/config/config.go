// File: internal/config/config.go
// Package config loads application configuration from environment
// variables following 12-factor principles.
package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
// All fields are populated from environment variables.
type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	// Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Redis
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Bearer token verification; tokens are issued externally.
	JWTSecret    string `env:"JWT_SECRET,required"`
	JWTAudience  string `env:"JWT_AUDIENCE" envDefault:"authenticated"`
	JWTAlgorithm string `env:"JWT_ALGORITHM" envDefault:"HS256"`

	// 唯一允許寫入工時紀錄的身分
	AllowedUserID string `env:"ALLOWED_WORKLOG_USER_ID,required"`

	// Comma-separated list of allowed origins
	CORSOrigins string `env:"CORS_ORIGINS" envDefault:"http://localhost:5173,http://localhost:8081"`

	// Per-IP write requests allowed per second
	RateLimitRPS int `env:"RATE_LIMIT_RPS" envDefault:"20"`
}

// AllowedOrigins parses the comma-separated origins string into a slice.
func (c *Config) AllowedOrigins() []string {
	origins := strings.Split(c.CORSOrigins, ",")
	result := make([]string, 0, len(origins))
	for _, origin := range origins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// Load parses a fresh Config from the environment.
func Load() (*Config, error) {
	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

var (
	once   sync.Once
	cfg    *Config
	cfgErr error
	loadFn = Load
)

// Get 回傳行程層級的組態，首次呼叫時讀取環境變數並快取。
func Get() (*Config, error) {
	once.Do(func() {
		cfg, cfgErr = loadFn()
	})
	return cfg, cfgErr
}
