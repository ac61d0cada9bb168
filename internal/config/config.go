package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	BackendSupabase = "supabase"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string

	// StoreBackend selects the data access shim: "supabase" talks to the
	// hosted PostgREST API, "postgres" connects to DatabaseURL directly and
	// "memory" serves seeded sample data for local development.
	StoreBackend   string
	SupabaseURL    string
	SupabaseAnon   string
	SupabaseSecret string
	DatabaseURL    string
	MaxDBConns     int32

	UpstreamTimeout time.Duration

	// RedisURL is optional. Empty disables the listing cache and makes the
	// contact rate limiter fall back to in-process buckets.
	RedisURL        string
	ListingCacheTTL time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	NotifyEmail  string

	ContactRatePerMinute int

	// AllowedOrigins controls HTTP CORS.
	// Empty slice means all origins are permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
// Store credentials are not validated here; a missing URL or key fails at
// the first store call.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	cfg := &Config{
		ServerPort:           getEnv("SERVER_PORT", "8080"),
		GinMode:              getEnv("GIN_MODE", "debug"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormat:            getEnv("LOG_FORMAT", "pretty"),
		StoreBackend:         strings.ToLower(getEnv("STORE_BACKEND", BackendSupabase)),
		SupabaseURL:          getEnv("SUPABASE_URL", os.Getenv("NEXT_PUBLIC_SUPABASE_URL")),
		SupabaseAnon:         getEnv("SUPABASE_ANON_KEY", os.Getenv("NEXT_PUBLIC_SUPABASE_ANON_KEY")),
		SupabaseSecret:       getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		MaxDBConns:           int32(getEnvInt("MAX_DB_CONNS", 8)),
		UpstreamTimeout:      time.Duration(getEnvInt("UPSTREAM_TIMEOUT_SECONDS", 10)) * time.Second,
		RedisURL:             getEnv("REDIS_URL", ""),
		ListingCacheTTL:      time.Duration(getEnvInt("LISTING_CACHE_TTL_SECONDS", 60)) * time.Second,
		SMTPHost:             getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:             getEnvInt("SMTP_PORT", 587),
		SMTPUser:             getEnv("SMTP_USER", ""),
		SMTPPassword:         getEnv("SMTP_PASSWORD", ""),
		NotifyEmail:          getEnv("NOTIFY_EMAIL", ""),
		ContactRatePerMinute: getEnvInt("CONTACT_RATE_PER_MINUTE", 5),
		AllowedOrigins:       parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}

	// The notification goes to the operator's own mailbox unless told otherwise.
	if cfg.NotifyEmail == "" {
		cfg.NotifyEmail = cfg.SMTPUser
	}
	return cfg
}

// MailEnabled reports whether SMTP credentials are present.
func (c *Config) MailEnabled() bool {
	return c.SMTPUser != "" && c.SMTPPassword != "" && c.NotifyEmail != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
