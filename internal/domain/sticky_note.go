package domain

import "time"

// StickyNote is a freeform note with a generated id, kept in a
// most-recently-added-first list. Not related to LessonNote.
type StickyNote struct {
	ID        string    `json:"id"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content"`
	Color     string    `json:"color,omitempty"`
	Starred   bool      `json:"starred"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
