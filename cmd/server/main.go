package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/folio-backend/internal/cache"
	"github.com/stemsi/folio-backend/internal/config"
	"github.com/stemsi/folio-backend/internal/database"
	"github.com/stemsi/folio-backend/internal/handler"
	"github.com/stemsi/folio-backend/internal/logger"
	"github.com/stemsi/folio-backend/internal/mailer"
	"github.com/stemsi/folio-backend/internal/metrics"
	"github.com/stemsi/folio-backend/internal/middleware"
	"github.com/stemsi/folio-backend/internal/repository"
	"github.com/stemsi/folio-backend/internal/router"
	"github.com/stemsi/folio-backend/internal/seed"
	"github.com/stemsi/folio-backend/internal/service"
	"github.com/stemsi/folio-backend/internal/supabase"
	"github.com/stemsi/folio-backend/internal/validator"
)

// stores bundles the repositories of whichever backend is active.
type stores struct {
	projects repository.ProjectRepository
	courses  repository.CourseRepository
	contacts repository.ContactRepository
	pinger   repository.Pinger
	close    func()
}

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("store", cfg.StoreBackend).
		Str("log_level", cfg.LogLevel).
		Msg("Starting folio backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to the Store ──────────────────────────────────────────
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.StoreBackend).Msg("Failed to open store")
	}
	defer st.close()

	// ─── Connect to Redis (optional) ───────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	if rdb != nil {
		defer rdb.Close()
	}

	// ─── Metrics ───────────────────────────────────────────────────────
	registry := metrics.NewRegistry()

	// ─── Notifier ──────────────────────────────────────────────────────
	var notifier mailer.Notifier = mailer.NopNotifier{}
	if cfg.MailEnabled() {
		smtp, err := mailer.NewSMTPNotifier(mailer.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			To:       cfg.NotifyEmail,
			Timeout:  cfg.UpstreamTimeout,
		}, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to configure SMTP notifier")
		}
		notifier = smtp
		log.Info().Str("host", cfg.SMTPHost).Int("port", cfg.SMTPPort).Msg("Contact notifications enabled")
	} else {
		log.Warn().Msg("SMTP credentials not set, contact notifications disabled")
	}

	// ─── Initialize Services ──────────────────────────────────────────
	listingCache := cache.NewListingCache(rdb, cfg.ListingCacheTTL, log)

	contactService := service.NewContactService(st.contacts, notifier, log)
	projectService := service.NewProjectService(st.projects, listingCache, log)
	courseService := service.NewCourseService(st.courses, listingCache, log)
	catalogService := service.NewCatalogService()

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Contact: handler.NewContactHandler(contactService),
		Project: handler.NewProjectHandler(projectService),
		Course:  handler.NewCourseHandler(courseService),
		Catalog: handler.NewCatalogHandler(catalogService),
		System:  handler.NewSystemHandler(st.pinger, rdb, registry, log),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	var contactLimiter gin.HandlerFunc
	if cfg.ContactRatePerMinute > 0 {
		contactLimiter = middleware.RedisRateLimit(rdb, cfg.ContactRatePerMinute, log)
	}
	r := router.SetupRouter(handlers, contactLimiter, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// openStores builds the repositories for cfg.StoreBackend.
func openStores(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*stores, error) {
	switch cfg.StoreBackend {
	case config.BackendSupabase:
		// Reads go through the public key; the insert needs the service-role
		// key so row-level security cannot silently drop submissions.
		anon := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseAnon, cfg.UpstreamTimeout)
		writeKey := cfg.SupabaseSecret
		if writeKey == "" {
			log.Warn().Msg("SUPABASE_SERVICE_ROLE_KEY not set, contact inserts use the anon key")
			writeKey = cfg.SupabaseAnon
		}
		admin := supabase.NewClient(cfg.SupabaseURL, writeKey, cfg.UpstreamTimeout)

		return &stores{
			projects: repository.NewSupabaseProjectRepository(anon),
			courses:  repository.NewSupabaseCourseRepository(anon),
			contacts: repository.NewSupabaseContactRepository(admin, log),
			pinger:   anon,
			close:    func() {},
		}, nil

	case config.BackendPostgres:
		pool, err := database.NewPostgresPool(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return &stores{
			projects: repository.NewPostgresProjectRepository(pool),
			courses:  repository.NewPostgresCourseRepository(pool),
			contacts: repository.NewPostgresContactRepository(pool),
			pinger:   repository.NewPostgresPinger(pool),
			close:    pool.Close,
		}, nil

	case config.BackendMemory:
		now := time.Now().UTC()
		mem := repository.NewMemoryStore()
		mem.Seed(seed.Projects(now), seed.Courses(now))
		log.Warn().Msg("Using in-memory store, contact messages are not persisted")
		return &stores{
			projects: mem,
			courses:  mem,
			contacts: mem,
			pinger:   mem,
			close:    func() {},
		}, nil

	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
