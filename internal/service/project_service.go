package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/stemsi/folio-backend/internal/cache"
	"github.com/stemsi/folio-backend/internal/config"
	"github.com/stemsi/folio-backend/internal/metrics"
	"github.com/stemsi/folio-backend/internal/model"
	"github.com/stemsi/folio-backend/internal/repository"
)

type ProjectService struct {
	projectRepo repository.ProjectRepository
	cache       *cache.ListingCache
	log         zerolog.Logger
}

func NewProjectService(projectRepo repository.ProjectRepository, listingCache *cache.ListingCache, log zerolog.Logger) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		cache:       listingCache,
		log:         log.With().Str("component", "project_service").Logger(),
	}
}

// List returns published projects matching f. The result is never nil.
func (s *ProjectService) List(ctx context.Context, f model.ProjectFilter) ([]model.Project, error) {
	key := config.CacheKey.ProjectListKey(f.Category, f.FeaturedOnly, f.Limit)

	projects, err := cache.Remember(ctx, s.cache, key, func(ctx context.Context) ([]model.Project, error) {
		return s.projectRepo.ListPublished(ctx, f)
	})
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues(repository.ProjectsTable).Inc()
		s.log.Error().Err(err).
			Str("category", f.Category).
			Bool("featured", f.FeaturedOnly).
			Int("limit", f.Limit).
			Msg("Failed to fetch projects")
		return nil, err
	}

	if projects == nil {
		projects = []model.Project{}
	}
	return projects, nil
}
