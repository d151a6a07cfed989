package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Addr               string
	Environment        string
	AuthUser           string
	AuthPassword       string
	FromEmail          string
	EmailPassword      string
	EmailEnabled       bool
	SMTPHost           string
	SMTPPort           int
	ImageDir           string
	MaxBodyBytes       int64
	RateLimitPerMinute int
	CORSOrigins        []string
}

func Load() Config {
	return Config{
		Addr:               getEnv("APP_ADDR", ":8080"),
		Environment:        getEnv("APP_ENV", "development"),
		AuthUser:           getEnv("AUTH_USER", ""),
		AuthPassword:       getEnv("AUTH_PASSWORD", ""),
		FromEmail:          getEnv("FROM_EMAIL", ""),
		EmailPassword:      getEnv("EMAIL_PASSWORD", ""),
		EmailEnabled:       getEnvBool("EMAIL_ENABLED", true),
		SMTPHost:           getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:           getEnvInt("SMTP_PORT", 587),
		ImageDir:           getEnv("IMG_DIR", "img"),
		MaxBodyBytes:       int64(getEnvInt("MAX_BODY_BYTES", 10485760)),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		CORSOrigins:        getEnvList("CORS_ORIGINS", []string{"*"}),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

// Validate enforces the four required startup values. Missing any of
// them is fatal: the service cannot authenticate requests or send mail
// without them.
func (c Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{key: "AUTH_USER", value: c.AuthUser},
		{key: "AUTH_PASSWORD", value: c.AuthPassword},
		{key: "FROM_EMAIL", value: c.FromEmail},
		{key: "EMAIL_PASSWORD", value: c.EmailPassword},
	}
	for _, item := range required {
		if strings.TrimSpace(item.value) == "" {
			return fmt.Errorf("%s is required", item.key)
		}
	}
	if c.EmailEnabled && strings.TrimSpace(c.SMTPHost) == "" {
		return fmt.Errorf("SMTP_HOST must be set when EMAIL_ENABLED is true")
	}
	if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
		return fmt.Errorf("SMTP_PORT must be a valid port")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	return nil
}
