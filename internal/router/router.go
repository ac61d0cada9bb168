package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stemsi/folio-backend/internal/config"
	"github.com/stemsi/folio-backend/internal/handler"
	"github.com/stemsi/folio-backend/internal/middleware"
	"github.com/stemsi/folio-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Contact *handler.ContactHandler
	Project *handler.ProjectHandler
	Course  *handler.CourseHandler
	Catalog *handler.CatalogHandler
	System  *handler.SystemHandler
}

// SetupRouter configures the Gin engine. contactLimiter guards the only
// write endpoint; pass nil to leave it unlimited.
func SetupRouter(handlers *Handlers, contactLimiter gin.HandlerFunc, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.Metrics())
	router.Use(middleware.Brotli())

	// ─── System ────────────────────────────────────────────────────────
	router.GET("/health", handlers.System.Health)
	router.GET("/ready", handlers.System.Ready)
	router.GET("/metrics", handlers.System.Metrics())

	// ─── Public API ────────────────────────────────────────────────────
	api := router.Group("/api")
	{
		listings := api.Group("", middleware.CacheControl(cfg.ListingCacheTTL))
		{
			listings.GET("/projects", handlers.Project.List)
			listings.GET("/courses", handlers.Course.List)
			listings.GET("/services", handlers.Catalog.Get)
		}

		contact := []gin.HandlerFunc{}
		if contactLimiter != nil {
			contact = append(contact, contactLimiter)
		}
		contact = append(contact, handlers.Contact.Submit)
		api.POST("/contact", contact...)
	}

	return router
}
