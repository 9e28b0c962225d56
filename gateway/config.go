package gateway

import "time"

// Config is a configuration for the payment gateway application.
type Config struct {
	HTTPAddr string
	// BankURL is the base URL of the acquiring bank.
	BankURL string
	// BankTimeout bounds a single bank call so a hung bank cannot hold a
	// worker indefinitely. A timed-out call is classified as unavailable.
	BankTimeout time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr:    "localhost:8090",
		BankURL:     "http://localhost:8080",
		BankTimeout: 10 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back to
// the defaults. BANK_TIMEOUT takes a Go duration string ("5s", "1m").
func ConfigFromEnv() *Config {
	config := DefaultConfig()

	config.HTTPAddr = getenv("HTTP_ADDR", config.HTTPAddr)
	config.BankURL = getenv("BANK_URL", config.BankURL)
	if v := getenv("BANK_TIMEOUT", ""); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.BankTimeout = d
		}
	}

	return config
}
