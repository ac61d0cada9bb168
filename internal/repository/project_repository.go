package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/folio-backend/internal/model"
)

const projectColumns = `id::text, title, description, category, image, github_url, live_url,
	technologies, published, featured, display_order, created_at`

// PostgresProjectRepository reads projects straight from PostgreSQL.
type PostgresProjectRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresProjectRepository(pool *pgxpool.Pool) *PostgresProjectRepository {
	return &PostgresProjectRepository{pool: pool}
}

// ListPublished returns published projects ordered by display_order ASC,
// then created_at DESC.
func (r *PostgresProjectRepository) ListPublished(ctx context.Context, f model.ProjectFilter) ([]model.Project, error) {
	query, args := buildProjectQuery(f)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Category, &p.Image, &p.GithubURL, &p.LiveURL,
			&p.Technologies, &p.Published, &p.Featured, &p.DisplayOrder, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		if p.Technologies == nil {
			p.Technologies = []string{}
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func buildProjectQuery(f model.ProjectFilter) (string, []any) {
	var sb strings.Builder
	args := []any{}

	sb.WriteString("SELECT " + projectColumns + " FROM " + ProjectsTable + " WHERE published = TRUE")

	if f.Category != "" {
		args = append(args, f.Category)
		fmt.Fprintf(&sb, " AND category = $%d", len(args))
	}
	if f.FeaturedOnly {
		sb.WriteString(" AND featured = TRUE")
	}

	sb.WriteString(" ORDER BY display_order ASC, created_at DESC")

	if f.Limit > 0 {
		args = append(args, f.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	return sb.String(), args
}
