// Package catalog provides read access to course metadata. The learner-state
// stores consume catalog courses as already-resolved input; they never fetch
// metadata themselves.
package catalog

import (
	"errors"
	"fmt"

	"github.com/coursetrail/coursetrail/internal/domain"
	"github.com/coursetrail/coursetrail/internal/storage"
)

// ErrNotFound is returned when a course is not in the catalog.
var ErrNotFound = errors.New("course not found")

// Store abstracts catalog persistence.
type Store interface {
	SaveCourse(course *domain.Course) error
	GetCourse(id string) (*domain.Course, error)
	ListCourses() ([]*domain.Course, error)
	DeleteCourse(id string) error
}

// Service handles catalog lookups and imports.
type Service struct {
	store Store
}

// NewService creates a new catalog service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Get retrieves a course with its lesson list.
func (s *Service) Get(id string) (*domain.Course, error) {
	course, err := s.store.GetCourse(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get course: %w", err)
	}
	return course, nil
}

// List returns all catalog courses.
func (s *Service) List() ([]*domain.Course, error) {
	courses, err := s.store.ListCourses()
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// Add stores a course, deriving TotalLessons from the lesson list when the
// course does not declare it.
func (s *Service) Add(course *domain.Course) error {
	if course.ID == "" {
		return fmt.Errorf("course id required")
	}
	if course.TotalLessons == 0 {
		course.TotalLessons = len(course.Lessons)
	}
	if err := s.store.SaveCourse(course); err != nil {
		return fmt.Errorf("save course: %w", err)
	}
	return nil
}

// Remove deletes a course from the catalog.
func (s *Service) Remove(id string) error {
	if err := s.store.DeleteCourse(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}
