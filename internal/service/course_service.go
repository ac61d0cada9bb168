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

type CourseService struct {
	courseRepo repository.CourseRepository
	cache      *cache.ListingCache
	log        zerolog.Logger
}

func NewCourseService(courseRepo repository.CourseRepository, listingCache *cache.ListingCache, log zerolog.Logger) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		cache:      listingCache,
		log:        log.With().Str("component", "course_service").Logger(),
	}
}

// ListFeatured returns published, featured courses. The result is never nil.
func (s *CourseService) ListFeatured(ctx context.Context) ([]model.Course, error) {
	courses, err := cache.Remember(ctx, s.cache, config.CacheKey.CourseListKey(), s.courseRepo.ListFeatured)
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues(repository.CoursesTable).Inc()
		s.log.Error().Err(err).Msg("Failed to fetch courses")
		return nil, err
	}

	if courses == nil {
		courses = []model.Course{}
	}
	return courses, nil
}
