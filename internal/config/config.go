package config

import (
	"flag"
	"fmt"
	"io"
	"os"

	"pocketbank/pkg/logging"
)

const defaultSigningKey = "pocketbank-dev-key"

type Config struct {
	Log logging.Config
	// MetricsAddr enables the /metrics endpoint when non-empty.
	MetricsAddr string
	SigningKey  string
}

// Load resolves defaults, then environment variables, then command-line flags.
func Load(args []string) (Config, error) {
	cfg := Config{
		Log:         logging.ConfigFromEnv(),
		MetricsAddr: os.Getenv("POCKETBANK_METRICS_ADDR"),
		SigningKey:  defaultSigningKey,
	}
	if key := os.Getenv("POCKETBANK_SIGNING_KEY"); key != "" {
		cfg.SigningKey = key
	}

	fs := flag.NewFlagSet("pocketbank", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "address for the Prometheus endpoint, empty to disable")
	fs.StringVar(&cfg.SigningKey, "signing-key", cfg.SigningKey, "HMAC key used to sign statements")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.SigningKey == "" {
		return Config{}, fmt.Errorf("signing key must not be empty")
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
