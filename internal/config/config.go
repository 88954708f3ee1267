package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabasePath     string
	SessionSecret    string
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string
	BaseURL          string
	LogLevel         string
	Port             string
}

func Load() (Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	godotenv.Load()

	config := Config{
		DatabasePath:     envOrDefault("DATABASE_PATH", "./data/diet-eco-plan.db"),
		SessionSecret:    os.Getenv("SESSION_SECRET"),
		OIDCIssuer:       os.Getenv("OIDC_ISSUER"),
		OIDCClientID:     os.Getenv("OIDC_CLIENT_ID"),
		OIDCClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
		OIDCRedirectURL:  os.Getenv("OIDC_REDIRECT_URL"),
		BaseURL:          envOrDefault("BASE_URL", "http://localhost:8080"),
		LogLevel:         envOrDefault("LOG_LEVEL", "info"),
		Port:             envOrDefault("PORT", "8080"),
	}

	if config.SessionSecret == "" {
		return Config{}, fmt.Errorf("SESSION_SECRET is required")
	}

	return config, nil
}

func envOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
