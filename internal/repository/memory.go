package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/stemsi/folio-backend/internal/model"
)

// MemoryStore keeps all three collections in process memory. It backs the
// "memory" store backend for local development and the handler tests.
type MemoryStore struct {
	mu       sync.RWMutex
	projects []model.Project
	courses  []model.Course
	messages []model.ContactMessage
	// Err, when set, is returned by every operation.
	Err error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Seed replaces the read-only collections.
func (m *MemoryStore) Seed(projects []model.Project, courses []model.Course) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.projects = append([]model.Project(nil), projects...)
	m.courses = append([]model.Course(nil), courses...)
}

// Messages returns a copy of the stored contact messages.
func (m *MemoryStore) Messages() []model.ContactMessage {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]model.ContactMessage(nil), m.messages...)
}

func (m *MemoryStore) ListPublished(_ context.Context, f model.ProjectFilter) ([]model.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}

	out := []model.Project{}
	for _, p := range m.projects {
		if !p.Published {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.FeaturedOnly && !p.Featured {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (m *MemoryStore) ListFeatured(context.Context) ([]model.Course, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}

	out := []model.Course{}
	for _, c := range m.courses {
		if c.Published && c.Featured {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemoryStore) Create(_ context.Context, msg *model.ContactMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	msg.ID = uuid.NewString()
	m.messages = append(m.messages, *msg)
	return nil
}

func (m *MemoryStore) Ping(context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.Err
}
