package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment.
// Loaded once in main and passed by reference, never mutated afterwards.
type Config struct {
	DBHost     string
	DBPort     uint
	DBUser     string
	DBPassword string
	DBName     string

	Port string

	JWTSecret                string
	AccessTokenExpireMinutes int

	// Shared secret gating film creation, independent of user auth.
	ValidCode string

	SMTPHost       string
	SMTPPort       int
	SMTPUsername   string
	SMTPPassword   string
	SMTPFrom       string
	ReceiverEmails []string
}

func Load() (*Config, error) {
	godotenv.Load()

	dbPort, err := strconv.ParseUint(getEnv("DB_PORT", "5432"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	ttl, err := strconv.Atoi(getEnv("ACCESS_TOKEN_EXPIRE_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid ACCESS_TOKEN_EXPIRE_MINUTES: %w", err)
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "465"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	cfg := &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     uint(dbPort),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		Port: getEnv("PORT", "8000"),

		JWTSecret:                os.Getenv("JWT_SECRET"),
		AccessTokenExpireMinutes: ttl,

		ValidCode: os.Getenv("VALID_CODE"),

		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPPort:       smtpPort,
		SMTPUsername:   os.Getenv("SMTP_USERNAME"),
		SMTPPassword:   os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:       os.Getenv("SMTP_FROM"),
		ReceiverEmails: splitList(os.Getenv("RECEIVER_EMAILS")),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
