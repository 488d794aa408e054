// Package notes is the sticky-note store: freeform notes with generated
// ids, independent of the per-lesson annotations in the learning store.
package notes

import (
	"fmt"
	"slices"
	"time"

	"github.com/coursetrail/coursetrail/internal/domain"
	"github.com/coursetrail/coursetrail/internal/storage"
	"github.com/google/uuid"
)

const (
	collection = "notes"
	docSticky  = "sticky"
)

// Service is the sticky-note store, most-recently-added-first.
type Service struct {
	kv    storage.KV
	notes []domain.StickyNote
	now   func() time.Time
}

// NewService creates the sticky-note store, loading any persisted state.
// Missing or corrupt persisted state starts the store empty.
func NewService(kv storage.KV) *Service {
	s := &Service{kv: kv, now: time.Now}
	if err := kv.Load(collection, docSticky, &s.notes); err != nil {
		s.notes = nil
	}
	return s
}

func (s *Service) persist() error {
	if err := s.kv.Save(collection, docSticky, s.notes); err != nil {
		return fmt.Errorf("persist sticky notes: %w", err)
	}
	return nil
}

// Add creates a note with a generated id and unshifts it onto the list.
// The caller's id, timestamps, and star state are ignored.
func (s *Service) Add(note domain.StickyNote) (*domain.StickyNote, error) {
	now := s.now()
	note.ID = uuid.New().String()
	note.Starred = false
	note.CreatedAt = now
	note.UpdatedAt = now
	if note.Tags == nil {
		note.Tags = []string{}
	}

	s.notes = append([]domain.StickyNote{note}, s.notes...)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return &s.notes[0], nil
}

// Update overwrites a note's text fields. Absent ids are a no-op.
func (s *Service) Update(id, title, content string) error {
	note := s.find(id)
	if note == nil {
		return nil
	}
	note.Title = title
	note.Content = content
	note.UpdatedAt = s.now()
	return s.persist()
}

// Remove deletes a note by id. Absent ids are a no-op.
func (s *Service) Remove(id string) error {
	before := len(s.notes)
	s.notes = slices.DeleteFunc(s.notes, func(n domain.StickyNote) bool {
		return n.ID == id
	})
	if len(s.notes) == before {
		return nil
	}
	return s.persist()
}

// Clear deletes all notes.
func (s *Service) Clear() error {
	if len(s.notes) == 0 {
		return nil
	}
	s.notes = nil
	return s.persist()
}

// Get returns a note by id, or nil if absent.
func (s *Service) Get(id string) *domain.StickyNote {
	if note := s.find(id); note != nil {
		n := *note
		return &n
	}
	return nil
}

// List returns all notes, newest first.
func (s *Service) List() []domain.StickyNote {
	out := make([]domain.StickyNote, len(s.notes))
	copy(out, s.notes)
	return out
}

// Count returns the number of notes.
func (s *Service) Count() int {
	return len(s.notes)
}

// ToggleStar flips a note's starred flag and returns the new value.
// Absent ids are a no-op returning false.
func (s *Service) ToggleStar(id string) (bool, error) {
	note := s.find(id)
	if note == nil {
		return false, nil
	}
	note.Starred = !note.Starred
	note.UpdatedAt = s.now()
	if err := s.persist(); err != nil {
		return false, err
	}
	return note.Starred, nil
}

// AddTag appends a tag to a note. Adding an existing tag is a no-op, as is
// an absent id.
func (s *Service) AddTag(id, tag string) error {
	note := s.find(id)
	if note == nil || tag == "" {
		return nil
	}
	if slices.Contains(note.Tags, tag) {
		return nil
	}
	note.Tags = append(note.Tags, tag)
	note.UpdatedAt = s.now()
	return s.persist()
}

func (s *Service) find(id string) *domain.StickyNote {
	for i := range s.notes {
		if s.notes[i].ID == id {
			return &s.notes[i]
		}
	}
	return nil
}
