package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	pstrings "wedify/pkg/platform/strings"
)

// Server captures process-level configuration. Everything is read once at
// boot; nothing here changes at runtime.
type Server struct {
	Addr string

	// Domain is the apex domain tenant subdomains hang off of
	// (e.g. "wedify.lk" serves "janith-and-sanduni.wedify.lk").
	Domain string

	// DevHost is the local-development alias treated as the apex.
	DevHost string

	// ReservedSubdomains are labels that must never resolve to a tenant.
	// Configuration, not code: extend via WEDIFY_RESERVED_SUBDOMAINS.
	ReservedSubdomains []string

	// TemplatesFile optionally overrides the embedded template catalog.
	TemplatesFile string

	DatabaseURL string
	Redis       RedisConfig
}

// RedisConfig holds connection settings for the optional wedding cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CacheTTL     time.Duration
}

// defaultReserved lists protocol-significant labels that always stay
// reserved regardless of configuration.
var defaultReserved = []string{
	"www", "mail", "ftp", "smtp", "pop", "imap",
	"api", "admin", "dashboard", "app",
	"blog", "shop", "store", "support", "help", "docs", "status",
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("WEDIFY_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	domain := os.Getenv("WEDIFY_DOMAIN")
	if domain == "" {
		domain = "wedify.lk"
	}
	devHost := os.Getenv("WEDIFY_DEV_HOST")
	if devHost == "" {
		devHost = "localhost"
	}

	reserved := defaultReserved
	if extra := os.Getenv("WEDIFY_RESERVED_SUBDOMAINS"); extra != "" {
		reserved = append(reserved, strings.Split(extra, ",")...)
	}
	reserved = pstrings.DedupeAndTrimLower(reserved)

	return Server{
		Addr:               addr,
		Domain:             strings.ToLower(domain),
		DevHost:            strings.ToLower(devHost),
		ReservedSubdomains: reserved,
		TemplatesFile:      os.Getenv("WEDIFY_TEMPLATES_FILE"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("WEDIFY_REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("WEDIFY_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("WEDIFY_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("WEDIFY_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("WEDIFY_REDIS_WRITE_TIMEOUT", 3*time.Second),
			CacheTTL:     envDuration("WEDIFY_CACHE_TTL", 5*time.Minute),
		},
	}
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
