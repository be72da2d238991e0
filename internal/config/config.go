package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port       string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret string
	TokenTTL  time.Duration // access token and session lifetime

	RedisAddr     string
	RedisPassword string

	// First admin seeded at startup when no admin exists.
	AdminUsername string
	AdminEmail    string
	AdminPassword string
	AdminFullName string

	CORSOrigin string
	LogLevel   string
	LogPretty  string
}

func Load() *Config {
	return &Config{
		Port:       getenv("PORT", "8080"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBName:     getenv("DB_NAME", "campusrent_db"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),

		JWTSecret: getenv("JWT_SECRET", "supersecret_change_me"),
		TokenTTL:  tokenTTL(getenv("TOKEN_TTL_MINUTES", "60")),

		RedisAddr:     getenv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminEmail:    getenv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
		AdminFullName: getenv("ADMIN_FULL_NAME", "Administrator"),

		CORSOrigin: getenv("CORS_ORIGIN", "http://localhost:3000"),
		LogLevel:   getenv("LOG_LEVEL", "info"),
		LogPretty:  getenv("LOG_PRETTY", "false"),
	}
}

// tokenTTL parses the TOKEN_TTL_MINUTES value, falling back to one hour on
// anything unusable.
func tokenTTL(v string) time.Duration {
	minutes, err := strconv.Atoi(v)
	if err != nil || minutes <= 0 {
		minutes = 60
	}
	return time.Duration(minutes) * time.Minute
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
