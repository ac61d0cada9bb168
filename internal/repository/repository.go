package repository

import (
	"context"

	"github.com/stemsi/folio-backend/internal/model"
)

// Store collection names.
const (
	// ProjectsView joins projects with their technologies on the hosted store.
	ProjectsView         = "projects_complete"
	ProjectsTable        = "projects"
	CoursesTable         = "courses"
	ContactMessagesTable = "contact_messages"
)

// ProjectRepository reads published projects.
type ProjectRepository interface {
	ListPublished(ctx context.Context, f model.ProjectFilter) ([]model.Project, error)
}

// CourseRepository reads courses.
type CourseRepository interface {
	ListFeatured(ctx context.Context) ([]model.Course, error)
}

// ContactRepository persists contact-form submissions.
type ContactRepository interface {
	// Create inserts msg and fills in store-assigned fields such as ID.
	Create(ctx context.Context, msg *model.ContactMessage) error
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
