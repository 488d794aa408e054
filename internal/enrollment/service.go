// Package enrollment tracks which courses a learner is enrolled in and the
// per-course lesson completion that drives each enrollment's progress.
package enrollment

import (
	"fmt"
	"sort"
	"time"

	"github.com/coursetrail/coursetrail/internal/domain"
	"github.com/coursetrail/coursetrail/internal/storage"
)

const (
	collection = "enrollment"
	docCourses = "courses"
)

// Service is the enrollment store. State is loaded once at construction and
// persisted after every change.
type Service struct {
	kv      storage.KV
	courses map[string]*domain.EnrolledCourse
	now     func() time.Time
}

// NewService creates the enrollment store, loading any persisted state.
// Missing or corrupt persisted state starts the store empty.
func NewService(kv storage.KV) *Service {
	s := &Service{
		kv:      kv,
		courses: make(map[string]*domain.EnrolledCourse),
		now:     time.Now,
	}
	if err := kv.Load(collection, docCourses, &s.courses); err != nil {
		s.courses = make(map[string]*domain.EnrolledCourse)
	}
	return s
}

func (s *Service) persist() error {
	if err := s.kv.Save(collection, docCourses, s.courses); err != nil {
		return fmt.Errorf("persist enrollments: %w", err)
	}
	return nil
}

// Enroll inserts a new enrollment for a catalog course. Enrolling an already
// enrolled course is a no-op that keeps the original enrollment metadata.
func (s *Service) Enroll(course domain.Course) error {
	if _, ok := s.courses[course.ID]; ok {
		return nil
	}
	s.courses[course.ID] = domain.NewEnrolledCourse(course, s.now())
	return s.persist()
}

// Unenroll removes an enrollment. Absent course ids are a no-op.
func (s *Service) Unenroll(courseID string) error {
	if _, ok := s.courses[courseID]; !ok {
		return nil
	}
	delete(s.courses, courseID)
	return s.persist()
}

// SetLessonCompletion marks a lesson complete or incomplete and recomputes
// the course's progress. A no-op if the course is not enrolled. The first
// time progress reaches 100% the completion date is stamped; redundant
// completion calls never re-stamp it.
func (s *Service) SetLessonCompletion(courseID, lessonID string, completed bool) error {
	course, ok := s.courses[courseID]
	if !ok {
		return nil
	}
	course.SetLessonDone(lessonID, completed, s.now())
	return s.persist()
}

// MarkComplete force-completes a course regardless of its lesson tally.
func (s *Service) MarkComplete(courseID string) error {
	course, ok := s.courses[courseID]
	if !ok {
		return nil
	}
	course.ForceComplete(s.now())
	return s.persist()
}

// IsEnrolled reports whether the course is in the enrollment set.
func (s *Service) IsEnrolled(courseID string) bool {
	_, ok := s.courses[courseID]
	return ok
}

// Get returns the enrollment for a course, or nil if not enrolled.
func (s *Service) Get(courseID string) *domain.EnrolledCourse {
	return s.courses[courseID]
}

// List returns all enrollments, oldest first.
func (s *Service) List() []*domain.EnrolledCourse {
	out := make([]*domain.EnrolledCourse, 0, len(s.courses))
	for _, c := range s.courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EnrolledDate.Equal(out[j].EnrolledDate) {
			return out[i].ID < out[j].ID
		}
		return out[i].EnrolledDate.Before(out[j].EnrolledDate)
	})
	return out
}

// ListCompleted returns all completed enrollments, oldest first.
func (s *Service) ListCompleted() []*domain.EnrolledCourse {
	var out []*domain.EnrolledCourse
	for _, c := range s.List() {
		if c.Completed {
			out = append(out, c)
		}
	}
	return out
}

// ListInProgress returns enrollments that are started but not completed.
func (s *Service) ListInProgress() []*domain.EnrolledCourse {
	var out []*domain.EnrolledCourse
	for _, c := range s.List() {
		if c.InProgress() {
			out = append(out, c)
		}
	}
	return out
}

// Count returns the number of enrollments.
func (s *Service) Count() int {
	return len(s.courses)
}

// TotalLearningHours sums the numeric prefix of each enrolled course's
// free-text duration. Durations without a leading integer contribute 0.
func (s *Service) TotalLearningHours() int {
	total := 0
	for _, c := range s.courses {
		total += domain.ParseDurationHours(c.Duration)
	}
	return total
}
