package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBMaxOpenConns int
	ServerPort     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	DiscoverURL     string
	DiscoverTimeout time.Duration

	// Features are enabled for every organization unless overridden in storage.
	Features             []string
	MobileEventsCacheTTL time.Duration

	OtelEnabled      bool
	OtelServiceName  string
	OtelEnvironment  string
	OtelEndpoint     string
	OtelInsecure     bool
	OtelSampleRatio  float64
	ShutdownDeadline time.Duration
}

func LoadConfig() (Config, error) {

	err := godotenv.Load()

	return Config{
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "password"),
		DBName:         getEnv("DB_NAME", "event_insights"),
		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 20),
		ServerPort:     getEnv("SERVER_PORT", "8080"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		DiscoverURL:     getEnv("DISCOVER_URL", "http://localhost:1218"),
		DiscoverTimeout: getEnvDuration("DISCOVER_TIMEOUT", 30*time.Second),

		Features:             splitList(getEnv("FEATURES", "")),
		MobileEventsCacheTTL: getEnvDuration("MOBILE_EVENTS_CACHE_TTL", 24*time.Hour),

		OtelEnabled:      getEnvBool("OTEL_ENABLED", false),
		OtelServiceName:  getEnv("OTEL_SERVICE_NAME", "event-insights"),
		OtelEnvironment:  getEnv("OTEL_ENVIRONMENT", "development"),
		OtelEndpoint:     getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		OtelInsecure:     getEnvBool("OTEL_EXPORTER_OTLP_INSECURE", false),
		OtelSampleRatio:  getEnvFloat("OTEL_SAMPLER_RATIO", 0.1),
		ShutdownDeadline: getEnvDuration("SHUTDOWN_DEADLINE", 10*time.Second),
	}, err
}

// DSN builds the pgx connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func getEnvBool(key string, defaultValue bool) bool {
	switch strings.ToLower(strings.TrimSpace(getEnv(key, ""))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(getEnv(key, "")); err == nil && d > 0 {
		return d
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
