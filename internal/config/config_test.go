package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"SERVER_PORT", "STORE_BACKEND", "SUPABASE_URL", "NEXT_PUBLIC_SUPABASE_URL",
		"SUPABASE_ANON_KEY", "NEXT_PUBLIC_SUPABASE_ANON_KEY", "REDIS_URL",
		"SMTP_USER", "SMTP_PASSWORD", "NOTIFY_EMAIL", "LISTING_CACHE_TTL_SECONDS",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, BackendSupabase, cfg.StoreBackend)
	assert.Equal(t, 60*time.Second, cfg.ListingCacheTTL)
	assert.Equal(t, 5, cfg.ContactRatePerMinute)
	assert.False(t, cfg.MailEnabled())
	assert.Nil(t, cfg.AllowedOrigins)
}

func TestLoad_PublicSupabaseFallback(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "")
	t.Setenv("NEXT_PUBLIC_SUPABASE_URL", "https://abc.supabase.co")
	t.Setenv("NEXT_PUBLIC_SUPABASE_ANON_KEY", "anon")

	cfg := Load()
	assert.Equal(t, "https://abc.supabase.co", cfg.SupabaseURL)
	assert.Equal(t, "anon", cfg.SupabaseAnon)
}

func TestLoad_NotifyDefaultsToAccount(t *testing.T) {
	t.Setenv("SMTP_USER", "me@example.com")
	t.Setenv("SMTP_PASSWORD", "secret")
	t.Setenv("NOTIFY_EMAIL", "")

	cfg := Load()
	require.True(t, cfg.MailEnabled())
	assert.Equal(t, "me@example.com", cfg.NotifyEmail)
}

func TestParseOrigins(t *testing.T) {
	assert.Nil(t, parseOrigins(""))
	assert.Equal(t, []string{"https://a.dev", "https://b.dev"}, parseOrigins(" https://a.dev, ,https://b.dev "))
}

func TestGetEnvInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("MAX_DB_CONNS", "lots")
	assert.Equal(t, 8, getEnvInt("MAX_DB_CONNS", 8))
}
