package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/folio-backend/internal/model"
	"github.com/stemsi/folio-backend/internal/supabase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePostgREST serves eq filters, order and limit over in-memory rows.
type fakePostgREST struct {
	mu       sync.Mutex
	tables   map[string][]map[string]any
	inserted int
}

func (f *fakePostgREST) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := strings.TrimPrefix(r.URL.Path, "/rest/v1/")
	w.Header().Set("Content-Type", "application/json")

	if r.Method == http.MethodPost {
		var rows []map[string]any
		if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		for _, row := range rows {
			f.inserted++
			row["id"] = fmt.Sprintf("msg-%d", f.inserted)
			f.tables[table] = append(f.tables[table], row)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(rows)
		return
	}

	var out []map[string]any
	q := r.URL.Query()
rows:
	for _, row := range f.tables[table] {
		for key, vals := range q {
			if key == "select" || key == "order" || key == "limit" {
				continue
			}
			want := strings.TrimPrefix(vals[0], "eq.")
			if fmt.Sprint(row[key]) != want {
				continue rows
			}
		}
		out = append(out, row)
	}

	if order := q.Get("order"); order != "" {
		keys := strings.Split(order, ",")
		sort.SliceStable(out, func(i, j int) bool {
			for _, k := range keys {
				col, dir, _ := strings.Cut(k, ".")
				a, b := fmt.Sprint(out[i][col]), fmt.Sprint(out[j][col])
				if n, ok := out[i][col].(float64); ok {
					a = fmt.Sprintf("%010.0f", n)
					b = fmt.Sprintf("%010.0f", out[j][col].(float64))
				}
				if a == b {
					continue
				}
				if dir == "desc" {
					return a > b
				}
				return a < b
			}
			return false
		})
	}

	if l := q.Get("limit"); l != "" {
		n, _ := strconv.Atoi(l)
		if n < len(out) {
			out = out[:n]
		}
	}
	if out == nil {
		out = []map[string]any{}
	}
	_ = json.NewEncoder(w).Encode(out)
}

func project(id, category string, order int, published, featured bool, created string) map[string]any {
	return map[string]any{
		"id": id, "title": "P" + id, "description": "d", "category": category, "image": "/img.png",
		"technologies": []any{"Go"}, "published": published, "featured": featured,
		"display_order": float64(order), "created_at": created,
	}
}

func newFake(t *testing.T) (*fakePostgREST, *supabase.Client) {
	t.Helper()
	f := &fakePostgREST{tables: map[string][]map[string]any{}}

	// Five published UI/UX projects, three published from other categories,
	// one unpublished UI/UX project.
	f.tables[ProjectsView] = []map[string]any{
		project("u5", "UI/UX", 5, true, false, "2024-01-05T00:00:00Z"),
		project("u1", "UI/UX", 1, true, true, "2024-01-01T00:00:00Z"),
		project("u3", "UI/UX", 3, true, false, "2024-01-03T00:00:00Z"),
		project("u2b", "UI/UX", 2, true, false, "2024-02-02T00:00:00Z"),
		project("u2a", "UI/UX", 2, true, false, "2024-01-02T00:00:00Z"),
		project("s1", "SaaS", 1, true, true, "2024-01-01T00:00:00Z"),
		project("w1", "Web Apps", 1, true, false, "2024-01-01T00:00:00Z"),
		project("e1", "E-Commerce", 4, true, false, "2024-01-01T00:00:00Z"),
		project("hidden", "UI/UX", 0, false, true, "2024-01-01T00:00:00Z"),
	}
	f.tables[CoursesTable] = []map[string]any{
		{"id": "c1", "title": "Go", "published": true, "featured": true, "created_at": "2024-01-01T00:00:00Z"},
		{"id": "c2", "title": "React", "published": true, "featured": false, "created_at": "2024-01-02T00:00:00Z"},
		{"id": "c3", "title": "Rust", "published": false, "featured": true, "created_at": "2024-01-03T00:00:00Z"},
		{"id": "c4", "title": "SQL", "published": true, "featured": true, "created_at": "2024-01-04T00:00:00Z"},
	}

	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return f, supabase.NewClient(srv.URL, "key", time.Second)
}

func TestSupabaseProjectRepository_CategoryAndLimit(t *testing.T) {
	_, client := newFake(t)
	repo := NewSupabaseProjectRepository(client)

	got, err := repo.ListPublished(context.Background(), model.ParseProjectFilter("UI/UX", "", "2"))
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, p := range got {
		assert.Equal(t, "UI/UX", p.Category)
		assert.True(t, p.Published)
	}
	assert.Equal(t, "u1", got[0].ID)
	// Equal display_order breaks ties by newest first.
	assert.Equal(t, "u2b", got[1].ID)
}

func TestSupabaseProjectRepository_AllReturnsEveryPublishedCategory(t *testing.T) {
	_, client := newFake(t)
	repo := NewSupabaseProjectRepository(client)

	got, err := repo.ListPublished(context.Background(), model.ParseProjectFilter("All", "", ""))
	require.NoError(t, err)
	require.Len(t, got, 8)

	categories := map[string]bool{}
	for i, p := range got {
		assert.True(t, p.Published)
		categories[p.Category] = true
		if i > 0 {
			assert.LessOrEqual(t, got[i-1].DisplayOrder, p.DisplayOrder)
		}
	}
	assert.Len(t, categories, 4)
}

func TestSupabaseProjectRepository_FeaturedOnly(t *testing.T) {
	_, client := newFake(t)
	repo := NewSupabaseProjectRepository(client)

	got, err := repo.ListPublished(context.Background(), model.ParseProjectFilter("", "true", ""))
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, p := range got {
		assert.True(t, p.Featured)
	}
}

func TestSupabaseProjectRepository_NoMatchIsEmptyNotNil(t *testing.T) {
	_, client := newFake(t)
	repo := NewSupabaseProjectRepository(client)

	got, err := repo.ListPublished(context.Background(), model.ParseProjectFilter("Real-time", "", ""))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSupabaseCourseRepository_PublishedAndFeaturedOnly(t *testing.T) {
	_, client := newFake(t)
	repo := NewSupabaseCourseRepository(client)

	got, err := repo.ListFeatured(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c4", got[0].ID)
	assert.Equal(t, "c1", got[1].ID)
}

func TestSupabaseContactRepository_CreateEachTime(t *testing.T) {
	f, client := newFake(t)
	repo := NewSupabaseContactRepository(client, zerolog.Nop())

	for i := 0; i < 3; i++ {
		msg := &model.ContactMessage{
			Name: "Jane", Email: "jane@x.com", Service: "web-development", Message: "Hi",
			Status: model.ContactStatusNew, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		require.NoError(t, repo.Create(context.Background(), msg))
		assert.Equal(t, fmt.Sprintf("msg-%d", i+1), msg.ID)
		assert.Equal(t, model.ContactStatusNew, msg.Status)
	}
	assert.Len(t, f.tables[ContactMessagesTable], 3)
}

// identityPostgREST mimics a table whose primary key is an int8 identity.
func identityPostgREST(t *testing.T, insertBody string) (*int, *supabase.Client) {
	t.Helper()
	inserted := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost:
			inserted++
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(insertBody))
		case strings.HasSuffix(r.URL.Path, "/"+ProjectsView):
			_, _ = w.Write([]byte(`[{"id":7,"title":"Atlas","category":"SaaS","technologies":null,"published":true,"display_order":1,"created_at":"2024-01-01T00:00:00Z"}]`))
		default:
			_, _ = w.Write([]byte(`[{"id":9007199254740993,"title":"Go","published":true,"featured":true,"created_at":"2024-01-01T00:00:00Z"}]`))
		}
	}))
	t.Cleanup(srv.Close)
	return &inserted, supabase.NewClient(srv.URL, "key", time.Second)
}

func TestSupabaseRepositories_NumericIdentityKeys(t *testing.T) {
	inserted, client := identityPostgREST(t,
		`[{"id":42,"name":"Jane","email":"jane@x.com","service":"other","message":"Hi","status":"new","created_at":"2024-01-01T00:00:00Z"}]`)
	ctx := context.Background()

	projects, err := NewSupabaseProjectRepository(client).ListPublished(ctx, model.ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "7", projects[0].ID)
	assert.Equal(t, []string{}, projects[0].Technologies)

	courses, err := NewSupabaseCourseRepository(client).ListFeatured(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "9007199254740993", courses[0].ID)

	msg := &model.ContactMessage{
		Name: "Jane", Email: "jane@x.com", Service: "other", Message: "Hi", Status: model.ContactStatusNew,
	}
	require.NoError(t, NewSupabaseContactRepository(client, zerolog.Nop()).Create(ctx, msg))
	assert.Equal(t, 1, *inserted)
	assert.Equal(t, "42", msg.ID)
	assert.Equal(t, "Jane", msg.Name)
}

func TestSupabaseContactRepository_StoredButUnreadableIsNotAFailure(t *testing.T) {
	inserted, client := identityPostgREST(t, `[{"id":42,"created_at":"not a timestamp"}]`)

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	msg := &model.ContactMessage{
		Name: "Jane", Email: "jane@x.com", Service: "other", Message: "Hi",
		Status: model.ContactStatusNew, CreatedAt: created,
	}
	require.NoError(t, NewSupabaseContactRepository(client, zerolog.Nop()).Create(context.Background(), msg))

	assert.Equal(t, 1, *inserted)
	assert.Equal(t, "Jane", msg.Name)
	assert.Equal(t, model.ContactStatusNew, msg.Status)
	assert.True(t, msg.CreatedAt.Equal(created))
}

func TestRowID_Decoding(t *testing.T) {
	tests := []struct {
		in   string
		want rowID
	}{
		{`"6f1c"`, "6f1c"},
		{`42`, "42"},
		{`null`, ""},
	}
	for _, tt := range tests {
		var id rowID
		require.NoError(t, json.Unmarshal([]byte(tt.in), &id), tt.in)
		assert.Equal(t, tt.want, id)
	}

	var id rowID
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &id))
}
