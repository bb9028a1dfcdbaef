package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	Env          string
	MongoURL     string
	MongoDB      string
	RedisURL     string
	KafkaBrokers []string
	KafkaTopic   string

	JWTSecret     string
	TokenTTL      time.Duration
	ResetTokenTTL time.Duration

	ProductCacheTTL time.Duration

	SMTPServer  string
	SMTPPort    string
	SenderEmail string
	SenderPass  string
	SenderName  string

	ResetURLBase string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, using system environment variables")
	}

	return Config{
		Port:         getEnv("PORT", "8000"),
		Env:          getEnv("APP_ENV", "development"),
		MongoURL:     getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "shop"),
		RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379"),
		KafkaBrokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "checkout.completed"),

		JWTSecret:     getEnv("PRIVATE_KEY", "dev-secret"),
		TokenTTL:      time.Hour * 24,
		ResetTokenTTL: time.Hour,

		ProductCacheTTL: time.Minute * 5,

		SMTPServer:  getEnv("SMTP_SERVER", "smtp.gmail.com"),
		SMTPPort:    getEnv("SMTP_PORT", "587"),
		SenderEmail: getEnv("SMTP_EMAIL", ""),
		SenderPass:  getEnv("SMTP_PASSWORD", ""),
		SenderName:  getEnv("SMTP_SENDER_NAME", "ShopSwift"),

		ResetURLBase: getEnv("RESET_URL_BASE", "https://example.com/reset-password"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
