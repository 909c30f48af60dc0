package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAddr                = ":8080"
	defaultPollDelay           = 5 * time.Second
	defaultLocale              = "en"
	defaultWalletID            = "default"
	defaultAuditMemoryCapacity = 1000
)

// Server captures the daemon configuration.
type Server struct {
	Addr     string
	WalletID string
	Locale   string
	// PollDelay is how long a deferred-issuance cycle waits before querying.
	PollDelay time.Duration
	// SeedFile optionally points to a YAML document list for the in-memory engine.
	SeedFile string
	Log      Log
	Redis    RedisConfig
	Kafka    KafkaConfig
}

type Log struct {
	Level string
	JSON  bool
}

// RedisConfig configures the marker store backend. An empty URL keeps markers in memory.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures the audit publisher. No brokers keeps the latest
// MemoryCapacity audit events per wallet in memory.
type KafkaConfig struct {
	Brokers        []string
	AuditTopic     string
	MemoryCapacity int
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	cfg := Server{
		Addr:     envOr("CATALOG_ADDR", defaultAddr),
		WalletID: envOr("CATALOG_WALLET_ID", defaultWalletID),
		Locale:   envOr("CATALOG_LOCALE", defaultLocale),
		SeedFile: os.Getenv("CATALOG_SEED_FILE"),
		Log: Log{
			Level: envOr("CATALOG_LOG_LEVEL", "info"),
			JSON:  os.Getenv("CATALOG_LOG_JSON") == "true",
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Kafka: KafkaConfig{
			Brokers:    splitList(os.Getenv("KAFKA_BROKERS")),
			AuditTopic: envOr("KAFKA_AUDIT_TOPIC", "catalog.audit"),
		},
	}

	var err error
	if cfg.PollDelay, err = durationEnv("CATALOG_POLL_DELAY", defaultPollDelay); err != nil {
		return Server{}, err
	}
	if cfg.Kafka.MemoryCapacity, err = intEnv("AUDIT_MEMORY_CAPACITY", defaultAuditMemoryCapacity); err != nil {
		return Server{}, err
	}
	if cfg.Redis.PoolSize, err = intEnv("REDIS_POOL_SIZE", 10); err != nil {
		return Server{}, err
	}
	if cfg.Redis.MinIdleConns, err = intEnv("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return Server{}, err
	}
	if cfg.Redis.DialTimeout, err = durationEnv("REDIS_DIAL_TIMEOUT", 5*time.Second); err != nil {
		return Server{}, err
	}
	if cfg.Redis.ReadTimeout, err = durationEnv("REDIS_READ_TIMEOUT", 3*time.Second); err != nil {
		return Server{}, err
	}
	if cfg.Redis.WriteTimeout, err = durationEnv("REDIS_WRITE_TIMEOUT", 3*time.Second); err != nil {
		return Server{}, err
	}
	if cfg.PollDelay <= 0 {
		return Server{}, fmt.Errorf("CATALOG_POLL_DELAY must be positive, got %s", cfg.PollDelay)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
