package model

import "time"

// Course is a course card shown in the courses section.
type Course struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	Level       string    `json:"level"`
	Duration    string    `json:"duration"`
	Students    int       `json:"students"`
	Rating      float64   `json:"rating"`
	Price       string    `json:"price"`
	Lessons     int       `json:"lessons"`
	Featured    bool      `json:"featured"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"created_at"`
}
