package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server struct {
		Port         string
		ReadTimeout  time.Duration
		WriteTimeout time.Duration
	}

	DatabaseURL string

	JWT struct {
		Secret      string
		TokenExpiry time.Duration
	}

	Upload struct {
		Dir        string
		StaticBase string
	}

	WhatsApp struct {
		APIBaseURL       string
		Token            string
		PhoneNumberID    string
		DefaultRecipient string
	}

	MikroTik struct {
		Address  string
		User     string
		Password string
	}

	Environment string
}

func Load() (*Config, error) {
	godotenv.Load() // load .env if present

	cfg := &Config{}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "fieldops.db"
	}

	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}
	cfg.JWT.TokenExpiry = durationEnv("JWT_TOKEN_EXPIRY", 24*time.Hour)

	cfg.Server.Port = getEnv("PORT", "8080")
	cfg.Server.ReadTimeout = durationEnv("SERVER_READ_TIMEOUT", 15*time.Second)
	cfg.Server.WriteTimeout = durationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second)

	cfg.Upload.Dir = getEnv("UPLOAD_DIR", "./uploads")
	cfg.Upload.StaticBase = getEnv("UPLOAD_STATIC_BASE", "/static/uploads")

	cfg.WhatsApp.APIBaseURL = getEnv("WHATSAPP_API_BASE_URL", "https://graph.facebook.com/v15.0")
	cfg.WhatsApp.Token = os.Getenv("WHATSAPP_TOKEN")
	cfg.WhatsApp.PhoneNumberID = os.Getenv("WHATSAPP_PHONE_NUMBER_ID")
	cfg.WhatsApp.DefaultRecipient = os.Getenv("WHATSAPP_DEFAULT_RECIPIENT")

	cfg.MikroTik.Address = getEnv("MIKROTIK_ADDRESS", "10.16.10.1:8728")
	cfg.MikroTik.User = getEnv("MIKROTIK_USER", "api")
	cfg.MikroTik.Password = os.Getenv("MIKROTIK_PASSWORD")

	cfg.Environment = getEnv("ENVIRONMENT", "development")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
