package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port               string
	MongoURI           string
	AmadeusAPIKey      string
	AmadeusAPISecret   string
	AmadeusEnv         string
	AllowedOrigins     []string
	ServiceName        string
	JaegerAddress      string
	RedisURL           string
	SMTPHost           string
	SMTPPort           int
	SMTPUser           string
	SMTPPass           string
	MailFrom           string
	LogFile            string
}

func LoadConfig() Config {
	return Config{
		Port:             getEnv("PORT", "5000"),
		MongoURI:         getEnv("MONGO_DB_URI", "mongodb://localhost:27017"),
		AmadeusAPIKey:    os.Getenv("AMADEUS_API_KEY"),
		AmadeusAPISecret: os.Getenv("AMADEUS_API_SECRET"),
		AmadeusEnv:       getEnv("AMADEUS_ENV", "test"),
		AllowedOrigins:   splitOrigins(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		ServiceName:      getEnv("SERVICE_NAME", "travel-booking-service"),
		JaegerAddress:    os.Getenv("JAEGER_ADDRESS"),
		RedisURL:         os.Getenv("REDIS_URL"),
		SMTPHost:         os.Getenv("SMTP_HOST"),
		SMTPPort:         getEnvInt("SMTP_PORT", 587),
		SMTPUser:         os.Getenv("SMTP_USER"),
		SMTPPass:         os.Getenv("SMTP_PASS"),
		MailFrom:         getEnv("MAIL_FROM", "bookings@travel-booking-service.com"),
		LogFile:          os.Getenv("LOG_FILE"),
	}
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
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func splitOrigins(value string) []string {
	parts := strings.Split(value, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
