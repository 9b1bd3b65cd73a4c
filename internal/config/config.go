package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Env  string
	Port string

	RedisURL  string
	RedisPass string
	RedisDB   int

	JWTSecret string

	// AdminUID is the player ID that receives the admin role on first login.
	AdminUID string
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:       getEnv("ENV", "development"),
		Port:      getEnv("PORT", "8080"),
		RedisURL:  getEnv("REDIS_URL", "localhost:6379"),
		RedisPass: getEnv("REDIS_PASSWORD", ""),
		JWTSecret: getEnv("JWT_SECRET", ""),
		AdminUID:  getEnv("ADMIN_UID", "12345678"),
	}

	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %v", err)
	}
	cfg.RedisDB = db

	if cfg.JWTSecret == "" {
		if cfg.Env == "production" {
			return nil, fmt.Errorf("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = "dev-secret-do-not-use-in-production"
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
