package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config aggregates application configuration values loaded from environment variables.
type Config struct {
	Env                string
	HTTPAddr           string
	CORSOrigins        []string
	StorageMode        string
	MongoURI           string
	MongoDB            string
	KafkaBrokers       []string
	KafkaTopicPrefix   string
	OutboxPollInterval time.Duration
	RetryBackoff       []time.Duration
	DefaultCurrency    string
	CalendarMonths     int
}

// Load parses configuration from the current environment.
func Load() (Config, error) {
	cfg := Config{
		Env:              getEnv("APP_ENV", "dev"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		StorageMode:      strings.ToLower(getEnv("STORAGE_MODE", "memory")),
		MongoURI:         os.Getenv("MONGO_URI"),
		MongoDB:          getEnv("MONGO_DB", "villastay"),
		KafkaTopicPrefix: getEnv("KAFKA_TOPIC_PREFIX", ""),
		DefaultCurrency:  strings.ToUpper(getEnv("DEFAULT_CURRENCY", "USD")),
	}
	origins := getEnv("CORS_ORIGINS", "http://localhost:3000")
	for _, raw := range strings.Split(origins, ",") {
		if v := strings.TrimSpace(raw); v != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, v)
		}
	}
	brokers := getEnv("KAFKA_BROKERS", "")
	if brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	poll, err := parseDurationEnv("OUTBOX_POLL_INTERVAL", 500*time.Millisecond)
	if err != nil {
		return Config{}, err
	}
	cfg.OutboxPollInterval = poll

	retryStr := getEnv("RETRY_BACKOFF", "1s,5s,30s")
	for _, raw := range strings.Split(retryStr, ",") {
		val := strings.TrimSpace(raw)
		if val == "" {
			continue
		}
		d, err := time.ParseDuration(val)
		if err != nil {
			return Config{}, fmt.Errorf("invalid RETRY_BACKOFF component %q: %w", raw, err)
		}
		cfg.RetryBackoff = append(cfg.RetryBackoff, d)
	}

	months, err := parseIntEnv("CALENDAR_MONTHS", 3)
	if err != nil {
		return Config{}, err
	}
	if months < 1 {
		return Config{}, fmt.Errorf("CALENDAR_MONTHS must be at least 1")
	}
	cfg.CalendarMonths = months

	switch cfg.StorageMode {
	case "memory":
	case "mongo":
		if cfg.MongoURI == "" {
			return Config{}, fmt.Errorf("MONGO_URI is required when STORAGE_MODE=mongo")
		}
	default:
		return Config{}, fmt.Errorf("unknown STORAGE_MODE %q", cfg.StorageMode)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration: %w", key, err)
	}
	return d, nil
}

func parseIntEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	var v int
	if _, err := fmt.Sscanf(raw, "%d", &v); err != nil {
		return 0, fmt.Errorf("invalid %s integer: %w", key, err)
	}
	return v, nil
}
