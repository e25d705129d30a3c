package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"rutcheck/pkg/rut"
)

// DefaultMaxBatchSize bounds a single batch validation request.
const DefaultMaxBatchSize = 1000

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Policy holds the heuristic bounds applied by the validation service.
	Policy       rut.Policy
	MaxBatchSize int
}

// FromEnv builds a Server config from environment variables so main stays lean.
// Unset variables take defaults; malformed ones are reported rather than
// silently replaced.
func FromEnv() (Server, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Server, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return fallback
	}

	cfg := Server{
		Addr:            get("RUTCHECK_ADDR", ":8080"),
		LogLevel:        strings.ToLower(get("RUTCHECK_LOG_LEVEL", "info")),
		LogFormat:       strings.ToLower(get("RUTCHECK_LOG_FORMAT", "json")),
		ShutdownTimeout: 10 * time.Second,
		Policy:          rut.DefaultPolicy(),
		MaxBatchSize:    DefaultMaxBatchSize,
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"RUTCHECK_MIN_BODY", &cfg.Policy.MinBody},
		{"RUTCHECK_MAX_BODY", &cfg.Policy.MaxBody},
		{"RUTCHECK_ORG_THRESHOLD", &cfg.Policy.OrganizationThreshold},
		{"RUTCHECK_MAX_BATCH", &cfg.MaxBatchSize},
	}
	for _, f := range ints {
		raw := get(f.key, "")
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return Server{}, fmt.Errorf("%s must be a positive integer, got %q", f.key, raw)
		}
		*f.dst = n
	}

	if raw := get("RUTCHECK_SHUTDOWN_TIMEOUT", ""); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Server{}, fmt.Errorf("RUTCHECK_SHUTDOWN_TIMEOUT must be a positive duration, got %q", raw)
		}
		cfg.ShutdownTimeout = d
	}

	if cfg.Policy.MinBody > cfg.Policy.MaxBody {
		return Server{}, fmt.Errorf("RUTCHECK_MIN_BODY (%d) exceeds RUTCHECK_MAX_BODY (%d)",
			cfg.Policy.MinBody, cfg.Policy.MaxBody)
	}

	return cfg, nil
}
