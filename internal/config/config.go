// Package config provides configuration loading and validation for the
// server and CLI. Upstream base URLs live here so tests and deployments can
// point the resolvers at different endpoints.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults for the Naver upstream endpoints. The place-summary API needs no
// API key but expects browser-like headers.
const (
	DefaultPort          = 8585
	DefaultPlaceAPIBase  = "https://map.naver.com/p/api/place/summary"
	DefaultPlacePageBase = "https://m.place.naver.com/place"
	DefaultShortLinkHost = "naver.me"
	DefaultReferer       = "https://map.naver.com/"
	DefaultHTTPTimeout   = 10 * time.Second
)

// Config holds the runtime configuration, loaded from the environment.
type Config struct {
	Port          int           `validate:"required,gt=0,lte=65535"`
	PlaceAPIBase  string        `validate:"required,url"`
	PlacePageBase string        `validate:"required,url"`
	ShortLinkHost string        `validate:"required,hostname"`
	Referer       string        `validate:"omitempty,url"`
	UserAgent     string        `validate:"omitempty"`
	HTTPTimeout   time.Duration `validate:"required,gt=0"`
}

// Load reads configuration from environment variables, filling in defaults
// for anything unset.
func Load() *Config {
	return &Config{
		Port:          getEnvInt("PORT", DefaultPort),
		PlaceAPIBase:  getEnvString("NAVER_PLACE_API_BASE", DefaultPlaceAPIBase),
		PlacePageBase: getEnvString("NAVER_PLACE_PAGE_BASE", DefaultPlacePageBase),
		ShortLinkHost: getEnvString("NAVER_SHORT_LINK_HOST", DefaultShortLinkHost),
		Referer:       getEnvString("NAVER_REFERER", DefaultReferer),
		UserAgent:     getEnvString("HTTP_USER_AGENT", ""),
		HTTPTimeout:   getEnvDuration("HTTP_TIMEOUT", DefaultHTTPTimeout),
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
