package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	JWTSecret   string
	CORSOrigins string

	// Directory for generated table QR images
	QRImagePath string
	// Base URL used in password-reset links
	PublicBaseURL string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	MailFrom string

	KafkaEnabled bool
	KafkaBrokers []string
	KafkaTopic   string
}

func Load() *Config {
	// Local development convenience; a missing .env is fine.
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=hotelapp port=5432 sslmode=disable"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		CORSOrigins:   getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		QRImagePath:   getEnv("QR_IMAGE_PATH", "./qr-images"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnvInt("SMTP_PORT", 587),
		SMTPUser:      getEnv("SMTP_USER", ""),
		SMTPPass:      getEnv("SMTP_PASSWORD", ""),
		MailFrom:      getEnv("MAIL_FROM", "support@hotelapp.local"),
		KafkaEnabled:  getEnv("KAFKA_ENABLED", "false") == "true",
		KafkaBrokers:  splitCSV(getEnv("KAFKA_BROKERS", "127.0.0.1:9092")),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "order-events"),
	}

	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET is not set; it is required to run")
	}
	if len(cfg.JWTSecret) < 32 {
		logrus.Fatal("JWT_SECRET must be at least 32 characters")
	}
	if cfg.SMTPHost == "" {
		logrus.Warn("SMTP_HOST is not set, password-reset mails will only be logged")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
