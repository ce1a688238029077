package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress  string
	DatabaseURI string
	TokenSecret string

	DarajaBaseURL        string
	DarajaConsumerKey    string
	DarajaConsumerSecret string
	DarajaShortcode      string
	DarajaPasskey        string
	DarajaCallbackURL    string

	MailerAddress string
	MailerAPIKey  string
	MailerFrom    string

	NotifyQueueSize   int
	NotifyWorkers     int
	NotifySendTimeout time.Duration
	ShutdownTimeout   time.Duration
}

const (
	defaultRunAddress        = ":8080"
	defaultTokenSecret       = "change-me-in-production"
	defaultDarajaBaseURL     = "https://sandbox.safaricom.co.ke"
	defaultMailerFrom        = "orders@techreads.example"
	defaultNotifyQueueSize   = 64
	defaultNotifyWorkers     = 4
	defaultNotifySendTimeout = 5 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
)

// Load parses configuration from a .env file, environment variables and flags.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:           getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:          getString(lookup, "DATABASE_URI", ""),
		TokenSecret:          getString(lookup, "TOKEN_SECRET", defaultTokenSecret),
		DarajaBaseURL:        getString(lookup, "DARAJA_BASE_URL", defaultDarajaBaseURL),
		DarajaConsumerKey:    getString(lookup, "DARAJA_CONSUMER_KEY", ""),
		DarajaConsumerSecret: getString(lookup, "DARAJA_CONSUMER_SECRET", ""),
		DarajaShortcode:      getString(lookup, "DARAJA_SHORTCODE", ""),
		DarajaPasskey:        getString(lookup, "DARAJA_PASSKEY", ""),
		DarajaCallbackURL:    getString(lookup, "DARAJA_CALLBACK_URL", ""),
		MailerAddress:        getString(lookup, "MAILER_ADDRESS", ""),
		MailerAPIKey:         getString(lookup, "MAILER_API_KEY", ""),
		MailerFrom:           getString(lookup, "MAILER_FROM", defaultMailerFrom),
		NotifyQueueSize:      getInt(lookup, "NOTIFY_QUEUE_SIZE", defaultNotifyQueueSize),
		NotifyWorkers:        getInt(lookup, "NOTIFY_WORKERS", defaultNotifyWorkers),
		NotifySendTimeout:    getDuration(lookup, "NOTIFY_SEND_TIMEOUT", defaultNotifySendTimeout),
		ShutdownTimeout:      getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("techreads", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		sendTimeoutStr     = cfg.NotifySendTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.DarajaBaseURL, "daraja-url", cfg.DarajaBaseURL, "Daraja API base URL")
	fs.StringVar(&cfg.DarajaCallbackURL, "daraja-callback", cfg.DarajaCallbackURL, "Public URL Daraja posts payment results to")
	fs.StringVar(&cfg.MailerAddress, "mailer", cfg.MailerAddress, "Mailer service base URL")
	fs.IntVar(&cfg.NotifyQueueSize, "notify-queue", cfg.NotifyQueueSize, "Notification queue capacity")
	fs.IntVar(&cfg.NotifyWorkers, "notify-workers", cfg.NotifyWorkers, "Number of concurrent notification workers")
	fs.StringVar(&sendTimeoutStr, "notify-timeout", sendTimeoutStr, "Per-message notification send timeout")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.NotifySendTimeout, err = time.ParseDuration(sendTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid notify send timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("TOKEN_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read token secret file: %w", err)
		}
		cfg.TokenSecret = string(content)
	}

	if cfg.NotifyQueueSize <= 0 {
		cfg.NotifyQueueSize = defaultNotifyQueueSize
	}

	if cfg.NotifyWorkers <= 0 {
		cfg.NotifyWorkers = defaultNotifyWorkers
	}

	if cfg.NotifySendTimeout <= 0 {
		cfg.NotifySendTimeout = defaultNotifySendTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.MailerAddress == "" {
		return nil, fmt.Errorf("mailer address must be provided")
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
