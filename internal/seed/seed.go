// Package seed holds the sample portfolio content used by cmd/seed and by
// the in-memory store backend.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/folio-backend/internal/model"
)

func strPtr(s string) *string { return &s }

// Projects returns the sample project set. Every category the gallery
// offers is represented at least once.
func Projects(now time.Time) []model.Project {
	day := 24 * time.Hour
	return []model.Project{
		{
			Title: "Atlas Analytics", Description: "Multi-tenant analytics dashboard with usage-based billing.",
			Category: "SaaS", Image: "/projects/atlas.png",
			LiveURL:      strPtr("https://atlas.example.com"),
			Technologies: []string{"Next.js", "Go", "PostgreSQL"},
			Published:    true, Featured: true, DisplayOrder: 1, CreatedAt: now.Add(-30 * day),
		},
		{
			Title: "Harbor Booking", Description: "Reservation flow for a marina network.",
			Category: "Web Apps", Image: "/projects/harbor.png",
			GithubURL:    strPtr("https://github.com/example/harbor"),
			Technologies: []string{"React", "Supabase"},
			Published:    true, Featured: true, DisplayOrder: 2, CreatedAt: now.Add(-60 * day),
		},
		{
			Title: "Lumen Store", Description: "Headless storefront with sub-second page loads.",
			Category: "E-Commerce", Image: "/projects/lumen.png",
			LiveURL:      strPtr("https://lumen.example.com"),
			Technologies: []string{"Next.js", "Stripe"},
			Published:    true, DisplayOrder: 3, CreatedAt: now.Add(-90 * day),
		},
		{
			Title: "Pulse Chat", Description: "Realtime support widget.",
			Category: "Real-time", Image: "/projects/pulse.png",
			Technologies: []string{"WebSockets", "Redis"},
			Published:    true, DisplayOrder: 4, CreatedAt: now.Add(-120 * day),
		},
		{
			Title: "Fintech Onboarding", Description: "Design system and onboarding flow.",
			Category: "UI/UX", Image: "/projects/onboarding.png",
			Technologies: []string{"Figma"},
			Published:    true, Featured: true, DisplayOrder: 5, CreatedAt: now.Add(-150 * day),
		},
		{
			Title: "Clinic Portal Redesign", Description: "Accessibility-first patient portal.",
			Category: "UI/UX", Image: "/projects/clinic.png",
			Technologies: []string{"Figma", "Storybook"},
			Published:    true, DisplayOrder: 6, CreatedAt: now.Add(-180 * day),
		},
		{
			Title: "Unreleased Experiment", Description: "Not ready for the gallery.",
			Category: "Web Apps", Image: "/projects/draft.png",
			Technologies: []string{"Go"},
			DisplayOrder: 0, CreatedAt: now,
		},
	}
}

// Courses returns the sample course set.
func Courses(now time.Time) []model.Course {
	day := 24 * time.Hour
	return []model.Course{
		{
			Title: "Modern React from Zero", Description: "Components, hooks and data fetching.",
			Thumbnail: "/courses/react.png", Level: "Beginner", Duration: "8 weeks",
			Students: 1240, Rating: 4.8, Price: "$49", Lessons: 42,
			Featured: true, Published: true, CreatedAt: now.Add(-10 * day),
		},
		{
			Title: "Performance Engineering for the Web", Description: "Measure, budget and ship fast pages.",
			Thumbnail: "/courses/perf.png", Level: "Advanced", Duration: "4 weeks",
			Students: 310, Rating: 4.9, Price: "$79", Lessons: 18,
			Featured: true, Published: true, CreatedAt: now.Add(-40 * day),
		},
		{
			Title: "Design Systems in Practice", Description: "Tokens, components and governance.",
			Thumbnail: "/courses/design.png", Level: "Intermediate", Duration: "6 weeks",
			Students: 580, Rating: 4.7, Price: "$59", Lessons: 26,
			Published: true, CreatedAt: now.Add(-70 * day),
		},
	}
}

// Postgres inserts the sample data in one transaction. Rows whose title
// already exists are skipped so the command can be re-run.
func Postgres(ctx context.Context, pool *pgxpool.Pool, now time.Time) (projects, courses int64, err error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, p := range Projects(now) {
		batch.Queue(
			`INSERT INTO projects (title, description, category, image, github_url, live_url,
			                       technologies, published, featured, display_order, created_at)
			 SELECT $1::text, $2::text, $3::text, $4::text, $5::text, $6::text,
			        $7::text[], $8::boolean, $9::boolean, $10::integer, $11::timestamptz
			 WHERE NOT EXISTS (SELECT 1 FROM projects WHERE title = $1)`,
			p.Title, p.Description, p.Category, p.Image, p.GithubURL, p.LiveURL,
			p.Technologies, p.Published, p.Featured, p.DisplayOrder, p.CreatedAt,
		).Exec(func(ct pgconn.CommandTag) error {
			projects += ct.RowsAffected()
			return nil
		})
	}
	for _, c := range Courses(now) {
		batch.Queue(
			`INSERT INTO courses (title, description, thumbnail, level, duration, students,
			                      rating, price, lessons, featured, published, created_at)
			 SELECT $1::text, $2::text, $3::text, $4::text, $5::text, $6::integer,
			        $7::numeric, $8::text, $9::integer, $10::boolean, $11::boolean, $12::timestamptz
			 WHERE NOT EXISTS (SELECT 1 FROM courses WHERE title = $1)`,
			c.Title, c.Description, c.Thumbnail, c.Level, c.Duration, c.Students,
			c.Rating, c.Price, c.Lessons, c.Featured, c.Published, c.CreatedAt,
		).Exec(func(ct pgconn.CommandTag) error {
			courses += ct.RowsAffected()
			return nil
		})
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return 0, 0, fmt.Errorf("insert sample rows: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, 0, fmt.Errorf("commit: %w", err)
	}
	return projects, courses, nil
}
