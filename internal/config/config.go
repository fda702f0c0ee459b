package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Chat     ChatConfig
	Catalog  CatalogConfig
	Checkout CheckoutConfig
	Tracing  TracingConfig
}

type AppConfig struct {
	Port               string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string // empty disables NATS
	RedisURL           string // empty disables cross-instance fan-out
}

// DatabaseConfig: an empty connection string keeps everything in memory.
type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

func (c SMTPConfig) Enabled() bool {
	return c.Host != ""
}

type ChatConfig struct {
	MinLatency time.Duration
	MaxLatency time.Duration
	Seed       uint64 // 0 means seeded from the clock
	SessionTTL time.Duration
}

type CatalogConfig struct {
	SeedFile string // empty uses the embedded catalog
}

type CheckoutConfig struct {
	DeliveryDays int
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Environment, "production")
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/markethub.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "MarketHub"),
		},
		Chat: ChatConfig{
			MinLatency: getEnvAsDuration("CHAT_MIN_LATENCY", 800*time.Millisecond),
			MaxLatency: getEnvAsDuration("CHAT_MAX_LATENCY", 2000*time.Millisecond),
			Seed:       uint64(getEnvAsInt("CHAT_SEED", 0)),
			SessionTTL: getEnvAsDuration("CHAT_SESSION_TTL", 24*time.Hour),
		},
		Catalog: CatalogConfig{
			SeedFile: getEnv("CATALOG_SEED_FILE", ""),
		},
		Checkout: CheckoutConfig{
			DeliveryDays: getEnvAsInt("CHECKOUT_DELIVERY_DAYS", 5),
		},
		Tracing: TracingConfig{
			Enabled:     getEnvAsBool("OTEL_ENABLED", false),
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "markethub-backend"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go durations ("1.5s") or plain milliseconds ("800").
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	if ms, err := strconv.Atoi(strValue); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	if d, err := time.ParseDuration(strValue); err == nil {
		return d
	}
	return fallback
}
