package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	JWTSecret       string
	SessionTTL      time.Duration
	AdminEmail      string
	AdminPassword   string
	SeedSampleData  bool
	LogLevel        string
	ShutdownTimeout time.Duration

	NotifyWebhookURL string
	NotifyWorkers    int
	NotifyBuffer     int

	S3 S3Config
}

// S3Config describes the bucket holding order attachments.
type S3Config struct {
	Bucket       string
	Region       string
	Endpoint     string
	AccessKey    string
	SecretKey    string
	UploadURLTTL time.Duration
}

// Enabled reports whether attachment storage is configured.
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

const (
	defaultRunAddress      = ":8080"
	defaultJWTSecret       = "change-me-in-production"
	defaultSessionTTL      = 24 * time.Hour
	defaultAdminEmail      = "admin@tareffa.com"
	defaultAdminPassword   = "password"
	defaultLogLevel        = "info"
	defaultShutdownTimeout = 10 * time.Second
	defaultNotifyWorkers   = 2
	defaultNotifyBuffer    = 64
	defaultS3Region        = "us-east-1"
	defaultUploadURLTTL    = 15 * time.Minute
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:       getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:      getString(lookup, "DATABASE_URI", ""),
		JWTSecret:        getString(lookup, "JWT_SECRET", defaultJWTSecret),
		AdminEmail:       getString(lookup, "ADMIN_EMAIL", defaultAdminEmail),
		AdminPassword:    getString(lookup, "ADMIN_PASSWORD", defaultAdminPassword),
		SeedSampleData:   getBool(lookup, "SEED_SAMPLE_DATA", true),
		LogLevel:         getString(lookup, "LOG_LEVEL", defaultLogLevel),
		NotifyWebhookURL: getString(lookup, "NOTIFY_WEBHOOK_URL", ""),
		NotifyWorkers:    getInt(lookup, "NOTIFY_WORKERS", defaultNotifyWorkers),
		NotifyBuffer:     getInt(lookup, "NOTIFY_BUFFER", defaultNotifyBuffer),
		S3: S3Config{
			Bucket:    getString(lookup, "S3_BUCKET", ""),
			Region:    getString(lookup, "S3_REGION", defaultS3Region),
			Endpoint:  getString(lookup, "S3_ENDPOINT", ""),
			AccessKey: getString(lookup, "S3_ACCESS_KEY", ""),
			SecretKey: getString(lookup, "S3_SECRET_KEY", ""),
		},
	}

	fs := flag.NewFlagSet("tareffa", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		sessionTTLStr      = getString(lookup, "SESSION_TTL", defaultSessionTTL.String())
		shutdownTimeoutStr = getString(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout.String())
		uploadTTLStr       = getString(lookup, "UPLOAD_URL_TTL", defaultUploadURLTTL.String())
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN, in-memory storage when empty")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing session tokens")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Session token lifetime")
	fs.StringVar(&cfg.AdminEmail, "admin-email", cfg.AdminEmail, "Email that signs in as the administrator")
	fs.StringVar(&cfg.AdminPassword, "admin-password", cfg.AdminPassword, "Administrator password")
	fs.BoolVar(&cfg.SeedSampleData, "seed", cfg.SeedSampleData, "Seed sample orders on first listing")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.NotifyWebhookURL, "notify-webhook", cfg.NotifyWebhookURL, "Webhook receiving notifications")
	fs.IntVar(&cfg.NotifyWorkers, "notify-workers", cfg.NotifyWorkers, "Number of concurrent webhook workers")
	fs.IntVar(&cfg.NotifyBuffer, "notify-buffer", cfg.NotifyBuffer, "Pending webhook deliveries buffer")
	fs.StringVar(&cfg.S3.Bucket, "s3-bucket", cfg.S3.Bucket, "Attachment bucket")
	fs.StringVar(&cfg.S3.Region, "s3-region", cfg.S3.Region, "Attachment bucket region")
	fs.StringVar(&cfg.S3.Endpoint, "s3-endpoint", cfg.S3.Endpoint, "Custom S3 endpoint")
	fs.StringVar(&cfg.S3.AccessKey, "s3-access-key", cfg.S3.AccessKey, "S3 access key")
	fs.StringVar(&cfg.S3.SecretKey, "s3-secret-key", cfg.S3.SecretKey, "S3 secret key")
	fs.StringVar(&uploadTTLStr, "upload-ttl", uploadTTLStr, "Lifetime of presigned upload URLs")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.S3.UploadURLTTL, err = time.ParseDuration(uploadTTLStr); err != nil {
		return nil, fmt.Errorf("invalid upload ttl: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.S3.UploadURLTTL <= 0 {
		cfg.S3.UploadURLTTL = defaultUploadURLTTL
	}

	if cfg.NotifyWorkers <= 0 {
		cfg.NotifyWorkers = defaultNotifyWorkers
	}

	if cfg.NotifyBuffer <= 0 {
		cfg.NotifyBuffer = defaultNotifyBuffer
	}

	if cfg.S3.Region == "" {
		cfg.S3.Region = defaultS3Region
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret must not be empty")
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

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
