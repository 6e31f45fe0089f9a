package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings. It is populated once from the
// environment at process start; nothing else reads os.Getenv directly.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	RedisAddr   string
	SMTPHost    string
	SMTPPort    int
	EmailUser   string
	EmailPass   string
	TokenTTL    time.Duration
}

// C is the active configuration, set by Load.
var C *Config

// Load reads the environment into a Config. A missing .env file is not
// fatal; values are then taken from the process environment directly.
func Load() *Config {
	loadDotEnv()

	cfg := &Config{
		Port:        getenv("PORT", "8000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   getenv("JWT_SECRET", "dev-secret-key"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		SMTPHost:    os.Getenv("SMTP_HOST"),
		SMTPPort:    getenvInt("SMTP_PORT", 587),
		EmailUser:   os.Getenv("EMAIL_USER"),
		EmailPass:   os.Getenv("EMAIL_PASS"),
		TokenTTL:    7 * 24 * time.Hour,
	}

	if cfg.JWTSecret == "dev-secret-key" {
		log.Println("Warning: JWT_SECRET is not set, using development default")
	}

	C = cfg
	return cfg
}

func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: invalid value for %s: %q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
