package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	Port string
	Env  string

	DatabaseDSN string
	RedisAddr   string

	// RequiredLanguages lists the language ids every term version must carry
	// content for. The first entry is the primary language.
	RequiredLanguages []string

	JWTSecret     []byte
	JWTExpiration time.Duration
)

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	Port = getEnv("PORT", "8080")
	Env = getEnv("APP_ENV", "development")

	DatabaseDSN = getEnv("DATABASE_DSN",
		"host=localhost port=5432 user=glossary password=glossary dbname=glossary sslmode=disable")
	RedisAddr = os.Getenv("REDIS_ADDR")

	RequiredLanguages = splitList(getEnv("REQUIRED_LANGUAGES", "lv,en"))

	JWTSecret = []byte(getEnv("JWT_SECRET", "change-this-in-production"))
	JWTExpiration = 24 * time.Hour
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
