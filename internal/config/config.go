package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultHTTPAddr = ":8080"
	defaultJWTTTL   = "24h"
	defaultMediaDir = "./media"
	defaultDBPath   = "cookbook.db"
)

type Config struct {
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	HTTPAddr    string
	MediaDir    string
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: getEnv("DATABASE_URL", defaultDBPath),
		JWTSecret:   strings.TrimSpace(os.Getenv("JWT_SECRET")),
		HTTPAddr:    getEnv("HTTP_ADDR", defaultHTTPAddr),
		MediaDir:    getEnv("MEDIA_DIR", defaultMediaDir),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
