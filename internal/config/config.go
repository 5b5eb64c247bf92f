// Package config resolves the metroroute runtime configuration from the
// process environment, optionally seeded from a .env file.
//
// Variables:
//
//	METROROUTE_ADDR            listen address            (":8080")
//	METROROUTE_MAP             YAML map file             (required to serve)
//	METROROUTE_CACHE_SIZE      route cache entries, 0=off (1024)
//	METROROUTE_LOG_LEVEL       debug|info|warn|error     ("info")
//	METROROUTE_CORS_ORIGINS    comma-separated origins   ("*")
//	METROROUTE_QUERY_TIMEOUT   per-search deadline       ("5s")
//	METROROUTE_MAX_EXPANSIONS  per-search cap, 0=none    (0)
//
// Variables already present in the environment win over the .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig is returned when a variable cannot be parsed.
var ErrInvalidConfig = errors.New("config: invalid value")

// ErrMissingMap is returned by RequireMap when no map file is configured.
var ErrMissingMap = errors.New("config: METROROUTE_MAP is not set")

const (
	envAddr          = "METROROUTE_ADDR"
	envMap           = "METROROUTE_MAP"
	envCacheSize     = "METROROUTE_CACHE_SIZE"
	envLogLevel      = "METROROUTE_LOG_LEVEL"
	envCORSOrigins   = "METROROUTE_CORS_ORIGINS"
	envQueryTimeout  = "METROROUTE_QUERY_TIMEOUT"
	envMaxExpansions = "METROROUTE_MAX_EXPANSIONS"
)

// Config is the resolved runtime configuration.
type Config struct {
	Addr          string
	MapPath       string
	CacheSize     int
	LogLevel      slog.Level
	CORSOrigins   []string
	QueryTimeout  time.Duration
	MaxExpansions int
}

// Default returns the configuration used when no variable is set.
func Default() Config {
	return Config{
		Addr:         ":8080",
		CacheSize:    1024,
		LogLevel:     slog.LevelInfo,
		CORSOrigins:  []string{"*"},
		QueryTimeout: 5 * time.Second,
	}
}

// Load reads the given .env files (".env" when none are named), skipping
// missing ones, and then resolves the configuration from the environment.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	return FromLookup(os.LookupEnv)
}

// FromLookup resolves the configuration through lookup, starting from
// Default. Empty values count as unset.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(envAddr); ok {
		cfg.Addr = v
	}
	if v, ok := get(envMap); ok {
		cfg.MapPath = v
	}
	if v, ok := get(envCacheSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, envCacheSize, v)
		}
		cfg.CacheSize = n
	}
	if v, ok := get(envLogLevel); ok {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, envLogLevel, v)
		}
	}
	if v, ok := get(envCORSOrigins); ok {
		cfg.CORSOrigins = nil
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}
	if v, ok := get(envQueryTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, envQueryTimeout, v)
		}
		cfg.QueryTimeout = d
	}
	if v, ok := get(envMaxExpansions); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, envMaxExpansions, v)
		}
		cfg.MaxExpansions = n
	}

	return cfg, nil
}

// RequireMap reports ErrMissingMap when MapPath is empty.
func (c Config) RequireMap() error {
	if c.MapPath == "" {
		return ErrMissingMap
	}

	return nil
}

// AllowAllOrigins reports whether CORS is open to every origin.
func (c Config) AllowAllOrigins() bool {
	for _, o := range c.CORSOrigins {
		if o == "*" {
			return true
		}
	}

	return false
}
