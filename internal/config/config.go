package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	TokenSecret     string
	ShippingFee     int64
	ShutdownTimeout time.Duration

	// Snap payment gateway credentials and behaviour flags.
	SnapServerKey  string
	SnapProduction bool
	SnapSanitize   bool
	Snap3DS        bool

	// Pending order expiry sweep.
	PendingOrderTTL time.Duration
	ExpireInterval  time.Duration
	ExpireBatch     int
}

const (
	defaultRunAddress      = ":8080"
	defaultTokenSecret     = "change-me-in-production"
	defaultShippingFee     = 20000
	defaultShutdownTimeout = 10 * time.Second
	defaultPendingOrderTTL = 24 * time.Hour
	defaultExpireInterval  = time.Minute
	defaultExpireBatch     = 50
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		TokenSecret:     getString(lookup, "TOKEN_SECRET", defaultTokenSecret),
		ShippingFee:     getInt64(lookup, "SHIPPING_FEE", defaultShippingFee),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		SnapServerKey:   getString(lookup, "SNAP_SERVER_KEY", ""),
		SnapProduction:  getBool(lookup, "SNAP_PRODUCTION", false),
		SnapSanitize:    getBool(lookup, "SNAP_SANITIZE", true),
		Snap3DS:         getBool(lookup, "SNAP_3DS", true),
		PendingOrderTTL: getDuration(lookup, "PENDING_ORDER_TTL", defaultPendingOrderTTL),
		ExpireInterval:  getDuration(lookup, "EXPIRE_INTERVAL", defaultExpireInterval),
		ExpireBatch:     getInt(lookup, "EXPIRE_BATCH", defaultExpireBatch),
	}

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pendingTTLStr      = cfg.PendingOrderTTL.String()
		expireIntervalStr  = cfg.ExpireInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.SnapServerKey, "snap-server-key", cfg.SnapServerKey, "Snap gateway server key")
	fs.BoolVar(&cfg.SnapProduction, "snap-production", cfg.SnapProduction, "Use production Snap endpoint")
	fs.Int64Var(&cfg.ShippingFee, "shipping-fee", cfg.ShippingFee, "Flat shipping fee in minor currency units")
	fs.IntVar(&cfg.ExpireBatch, "expire-batch", cfg.ExpireBatch, "Maximum pending orders expired per sweep")
	fs.StringVar(&pendingTTLStr, "pending-ttl", pendingTTLStr, "Age after which pending orders expire")
	fs.StringVar(&expireIntervalStr, "expire-interval", expireIntervalStr, "Interval between expiry sweeps")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.PendingOrderTTL, err = time.ParseDuration(pendingTTLStr); err != nil {
		return nil, fmt.Errorf("invalid pending ttl: %w", err)
	}

	if cfg.ExpireInterval, err = time.ParseDuration(expireIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid expire interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if keyFile, ok := lookup("SNAP_SERVER_KEY_FILE"); ok && keyFile != "" {
		content, err := os.ReadFile(keyFile)
		if err != nil {
			return nil, fmt.Errorf("read snap server key file: %w", err)
		}
		cfg.SnapServerKey = string(content)
	}

	if cfg.ShippingFee < 0 {
		cfg.ShippingFee = defaultShippingFee
	}

	if cfg.ExpireBatch <= 0 {
		cfg.ExpireBatch = defaultExpireBatch
	}

	if cfg.PendingOrderTTL <= 0 {
		cfg.PendingOrderTTL = defaultPendingOrderTTL
	}

	if cfg.ExpireInterval <= 0 {
		cfg.ExpireInterval = defaultExpireInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.SnapServerKey == "" {
		return nil, fmt.Errorf("snap server key must be provided")
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

func getInt64(lookup envLookup, key string, def int64) int64 {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
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

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
