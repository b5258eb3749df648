package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Carrier stores carrier API client settings.
type Carrier struct {
	BaseURL  string
	Username string
	Password string
	Language string
	// DefaultDropoffOfficeID is the process-wide drop-off office used when
	// a shipment does not name one. Zero means unset; normalization then
	// falls back to its own constant.
	DefaultDropoffOfficeID int64
	Timeout                time.Duration
}

// Config stores HTTP service settings.
type Config struct {
	Port      int
	PprofAddr string
	// PprofUser/PprofPass gate non-loopback pprof access; loopback
	// requests need no auth.
	PprofUser string
	PprofPass string
	Carrier   Carrier
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      DefaultPort(),
		PprofAddr: os.Getenv("PPROF_ADDR"),
		PprofUser: os.Getenv("PPROF_USER"),
		PprofPass: os.Getenv("PPROF_PASS"),
		Carrier:   DefaultCarrier(),
	}

	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %q", v)
		}
		cfg.Port = p
	}
	if v := os.Getenv("CARRIER_BASE_URL"); v != "" {
		cfg.Carrier.BaseURL = v
	}
	if v := os.Getenv("CARRIER_USERNAME"); v != "" {
		cfg.Carrier.Username = v
	}
	if v := os.Getenv("CARRIER_PASSWORD"); v != "" {
		cfg.Carrier.Password = v
	}
	if v := os.Getenv("CARRIER_LANGUAGE"); v != "" {
		cfg.Carrier.Language = v
	}
	if v := os.Getenv("CARRIER_DEFAULT_DROPOFF_OFFICE_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id < 0 {
			return nil, fmt.Errorf("invalid CARRIER_DEFAULT_DROPOFF_OFFICE_ID: %q", v)
		}
		cfg.Carrier.DefaultDropoffOfficeID = id
	}
	if v := os.Getenv("CARRIER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid CARRIER_TIMEOUT: %q", v)
		}
		cfg.Carrier.Timeout = d
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.StringVar(&cfg.Carrier.BaseURL, "carrier-base-url", cfg.Carrier.BaseURL, "carrier API base URL")
	if err := parseFlags(); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.Carrier.BaseURL == "" {
		return nil, fmt.Errorf("carrier base URL is required")
	}
	return cfg, nil
}

func parseFlags() error {
	if pflag.Parsed() {
		return nil
	}
	return pflag.CommandLine.Parse(os.Args[1:])
}
