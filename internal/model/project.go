package model

import (
	"strconv"
	"strings"
	"time"
)

// CategoryAll is the sentinel category meaning "no category filter".
const CategoryAll = "All"

// MaxProjectLimit caps the limit query parameter.
const MaxProjectLimit = 100

// Project is a portfolio entry. The application only ever reads projects.
type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Image        string    `json:"image"`
	GithubURL    *string   `json:"github_url,omitempty"`
	LiveURL      *string   `json:"live_url,omitempty"`
	Technologies []string  `json:"technologies"`
	Published    bool      `json:"published"`
	Featured     bool      `json:"featured"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProjectFilter narrows the published project listing.
type ProjectFilter struct {
	Category     string
	FeaturedOnly bool
	// Limit caps the number of rows; 0 means no cap.
	Limit int
}

// ParseProjectFilter builds a filter from raw query values.
// An empty or "All" category disables the category filter, only the exact
// string "true" enables featured-only, and a limit that is not a positive
// integer is ignored.
func ParseProjectFilter(category, featured, limit string) ProjectFilter {
	f := ProjectFilter{FeaturedOnly: featured == "true"}

	if c := strings.TrimSpace(category); c != "" && c != CategoryAll {
		f.Category = c
	}

	if n, err := strconv.Atoi(strings.TrimSpace(limit)); err == nil && n > 0 {
		if n > MaxProjectLimit {
			n = MaxProjectLimit
		}
		f.Limit = n
	}
	return f
}
