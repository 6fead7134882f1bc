package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DSN           string
	AccountSID    string
	AuthToken     string
	SMSFrom       string
	SessionSecret string
	AppPort       string
}

func Load() Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	} else {
		log.Println("✅ .env file loaded successfully!")
	}

	cfg := Config{
		DSN:           os.Getenv("MYSQL_DSN"),
		AccountSID:    os.Getenv("ACCOUNT_SID"),
		AuthToken:     os.Getenv("AUTH_TOKEN"),
		SMSFrom:       os.Getenv("SMS_FROM"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		AppPort:       os.Getenv("APP_PORT"),
	}

	if cfg.DSN == "" {
		log.Fatal("❌ MYSQL_DSN not set in environment")
	}
	if cfg.AccountSID == "" {
		log.Fatal("❌ ACCOUNT_SID not set in environment")
	}
	if cfg.AuthToken == "" {
		log.Fatal("❌ AUTH_TOKEN not set in environment")
	}
	if cfg.SMSFrom == "" {
		cfg.SMSFrom = "+15109441564"
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "dev-secret-only"
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}

	return cfg
}
