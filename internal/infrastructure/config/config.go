package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration
	DatabasePath    string

	// Contact-form email delivery
	MailAPIURL       string // transactional email HTTP endpoint
	MailAPIKey       string
	MailFrom         string // sender address
	ContactRecipient string // inbox that receives contact-form messages
	MailWorkers      int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:    mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout:  mustGetDuration("SHUTDOWN_TIMEOUT"),
		DatabasePath:     getenvDefault("DATABASE_PATH", "linkdeck.db"),
		MailAPIURL:       getenvDefault("MAIL_API_URL", "http://localhost:8025"),
		MailAPIKey:       os.Getenv("MAIL_API_KEY"),
		MailFrom:         getenvDefault("MAIL_FROM", "no-reply@linkdeck.local"),
		ContactRecipient: mustGetenv("CONTACT_RECIPIENT"),
		MailWorkers:      2,
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
