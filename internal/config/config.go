package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	TokenSecret     string
	AdminLogin      string
	AdminPassword   string
	DriverClaimWait time.Duration
	ShutdownTimeout time.Duration
	EventBufferSize int
	KafkaBrokers    []string
	KafkaTopic      string
}

const (
	defaultRunAddress      = ":8080"
	defaultTokenSecret     = "change-me-in-production"
	defaultAdminLogin      = "admin"
	defaultDriverClaimWait = 2 * time.Hour
	defaultShutdownTimeout = 10 * time.Second
	defaultEventBufferSize = 64
	defaultKafkaTopic      = "courierpay-events"
)

// Load parses configuration from .env, environment variables, and flags.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		TokenSecret:     getString(lookup, "TOKEN_SECRET", defaultTokenSecret),
		AdminLogin:      getString(lookup, "ADMIN_LOGIN", defaultAdminLogin),
		AdminPassword:   getString(lookup, "ADMIN_PASSWORD", ""),
		DriverClaimWait: getDuration(lookup, "DRIVER_CLAIM_WAIT", defaultDriverClaimWait),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		EventBufferSize: getInt(lookup, "EVENT_BUFFER_SIZE", defaultEventBufferSize),
		KafkaBrokers:    getList(lookup, "KAFKA_BROKERS"),
		KafkaTopic:      getString(lookup, "KAFKA_TOPIC", defaultKafkaTopic),
	}

	fs := flag.NewFlagSet("courierpay", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		claimWaitStr       = cfg.DriverClaimWait.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		brokersStr         = strings.Join(cfg.KafkaBrokers, ",")
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "Secret for signing identity tokens")
	fs.StringVar(&cfg.AdminLogin, "admin-login", cfg.AdminLogin, "Login of the administrator account")
	fs.StringVar(&cfg.AdminPassword, "admin-password", cfg.AdminPassword, "Password of the administrator account")
	fs.StringVar(&claimWaitStr, "claim-wait", claimWaitStr, "Wait before a driver may self-claim a tip")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.EventBufferSize, "event-buffer", cfg.EventBufferSize, "Event stream buffer size")
	fs.StringVar(&brokersStr, "kafka-brokers", brokersStr, "Comma-separated Kafka brokers for the event relay")
	fs.StringVar(&cfg.KafkaTopic, "kafka-topic", cfg.KafkaTopic, "Kafka topic for ledger events")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.DriverClaimWait, err = time.ParseDuration(claimWaitStr); err != nil {
		return nil, fmt.Errorf("invalid claim wait: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	cfg.KafkaBrokers = splitList(brokersStr)

	if cfg.DriverClaimWait <= 0 {
		cfg.DriverClaimWait = defaultDriverClaimWait
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.EventBufferSize <= 0 {
		cfg.EventBufferSize = defaultEventBufferSize
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.AdminLogin == "" {
		return nil, fmt.Errorf("administrator login must be provided")
	}

	if cfg.AdminPassword == "" {
		return nil, fmt.Errorf("administrator password must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getList(lookup envLookup, key string) []string {
	if v, ok := lookup(key); ok {
		return splitList(v)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
