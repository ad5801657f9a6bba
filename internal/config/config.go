package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server         ServerConfig
	Database       DatabaseConfig
	Session        SessionConfig
	AdminBootstrap AdminBootstrapConfig
	Logging        LoggingConfig
	Environment    string
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	URL            string
	MaxConnections int
}

type SessionConfig struct {
	CookieName string
	TTL        time.Duration
}

type AdminBootstrapConfig struct {
	Name     string
	Email    string
	Password string
}

type LoggingConfig struct {
	Level  string
	Format string
}

func Load() (Config, error) {
	// A local .env is optional; deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvInt("SERVER_PORT", 8080),
		},
		Database: DatabaseConfig{
			URL:            getEnv("DATABASE_URL", ""),
			MaxConnections: getEnvInt("DATABASE_MAX_CONNECTIONS", 10),
		},
		Session: SessionConfig{
			CookieName: getEnv("SESSION_COOKIE_NAME", "gkevents_session"),
			TTL:        time.Duration(getEnvInt("SESSION_TTL_HOURS", 8)) * time.Hour,
		},
		AdminBootstrap: AdminBootstrapConfig{
			Name:     getEnv("ADMIN_NAME", ""),
			Email:    getEnv("ADMIN_EMAIL", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Environment: getEnv("ENVIRONMENT", "development"),
	}

	if cfg.Database.URL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.Session.TTL <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL_HOURS must be positive")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
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
