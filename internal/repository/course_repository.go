package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/folio-backend/internal/model"
)

type PostgresCourseRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCourseRepository(pool *pgxpool.Pool) *PostgresCourseRepository {
	return &PostgresCourseRepository{pool: pool}
}

// ListFeatured returns courses that are both published and featured, newest first.
func (r *PostgresCourseRepository) ListFeatured(ctx context.Context) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id::text, title, description, thumbnail, level, duration, students, rating::float8,
		        price, lessons, featured, published, created_at
		 FROM courses
		 WHERE published = TRUE AND featured = TRUE
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}
	defer rows.Close()

	courses := []model.Course{}
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(
			&c.ID, &c.Title, &c.Description, &c.Thumbnail, &c.Level, &c.Duration, &c.Students, &c.Rating,
			&c.Price, &c.Lessons, &c.Featured, &c.Published, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}
