package domain

import "time"

// LessonRecord is one entry in the learning tracker's completion ledger.
type LessonRecord struct {
	Completed bool      `json:"completed"`
	Timestamp time.Time `json:"timestamp"`
}

// LessonNote is a free-text annotation attached to a (course, lesson) pair.
// At most one note exists per pair; later writes overwrite the content.
// Distinct from StickyNote, which is a freeform note unattached to content.
type LessonNote struct {
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	UpdatedAt time.Time `json:"updated_at"`
}
