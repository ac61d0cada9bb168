package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/folio-backend/internal/model"
	"github.com/stemsi/folio-backend/internal/supabase"
)

// rowID accepts both text keys (uuid) and numeric identity keys (int8),
// which is what tables created from the dashboard get by default.
type rowID string

func (id *rowID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = rowID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = rowID(n.String())
	return nil
}

// The outer ID field shadows the embedded model's string ID during decoding.
type projectRow struct {
	model.Project
	ID rowID `json:"id"`
}

type courseRow struct {
	model.Course
	ID rowID `json:"id"`
}

type storedContactRow struct {
	model.ContactMessage
	ID rowID `json:"id"`
}

// SupabaseProjectRepository reads projects through the hosted REST API.
type SupabaseProjectRepository struct {
	client *supabase.Client
}

func NewSupabaseProjectRepository(client *supabase.Client) *SupabaseProjectRepository {
	return &SupabaseProjectRepository{client: client}
}

func (r *SupabaseProjectRepository) ListPublished(ctx context.Context, f model.ProjectFilter) ([]model.Project, error) {
	q := r.client.From(ProjectsView).
		Eq("published", true).
		Order("display_order", true).
		Order("created_at", false)

	if f.Category != "" {
		q = q.Eq("category", f.Category)
	}
	if f.FeaturedOnly {
		q = q.Eq("featured", true)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var rows []projectRow
	if err := q.Execute(ctx, &rows); err != nil {
		return nil, fmt.Errorf("select projects: %w", err)
	}

	projects := make([]model.Project, 0, len(rows))
	for _, row := range rows {
		p := row.Project
		p.ID = string(row.ID)
		if p.Technologies == nil {
			p.Technologies = []string{}
		}
		projects = append(projects, p)
	}
	return projects, nil
}

type SupabaseCourseRepository struct {
	client *supabase.Client
}

func NewSupabaseCourseRepository(client *supabase.Client) *SupabaseCourseRepository {
	return &SupabaseCourseRepository{client: client}
}

func (r *SupabaseCourseRepository) ListFeatured(ctx context.Context) ([]model.Course, error) {
	var rows []courseRow
	err := r.client.From(CoursesTable).
		Eq("published", true).
		Eq("featured", true).
		Order("created_at", false).
		Execute(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("select courses: %w", err)
	}

	courses := make([]model.Course, 0, len(rows))
	for _, row := range rows {
		c := row.Course
		c.ID = string(row.ID)
		courses = append(courses, c)
	}
	return courses, nil
}

// SupabaseContactRepository inserts with the service-role client, since
// anonymous inserts into contact_messages are blocked by row-level security.
type SupabaseContactRepository struct {
	client *supabase.Client
	log    zerolog.Logger
}

func NewSupabaseContactRepository(client *supabase.Client, log zerolog.Logger) *SupabaseContactRepository {
	return &SupabaseContactRepository{
		client: client,
		log:    log.With().Str("component", "contact_repository").Logger(),
	}
}

type contactRow struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Service   string    `json:"service"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *SupabaseContactRepository) Create(ctx context.Context, m *model.ContactMessage) error {
	rows := []contactRow{{
		Name:      m.Name,
		Email:     m.Email,
		Service:   m.Service,
		Message:   m.Message,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}}

	var stored []storedContactRow
	err := r.client.Insert(ctx, ContactMessagesTable, rows, &stored)
	if errors.Is(err, supabase.ErrDecode) {
		// The row is stored; failing here would invite a duplicate resubmission.
		r.log.Warn().Err(err).Msg("Contact message stored but representation unreadable")
		return nil
	}
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	if len(stored) > 0 {
		*m = stored[0].ContactMessage
		m.ID = string(stored[0].ID)
	}
	return nil
}
