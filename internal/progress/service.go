// Package progress tracks per-course completion independently of the
// enrollment store. Records are created by an explicit init call; lesson
// updates against an uninitialized course are silently dropped.
package progress

import (
	"fmt"
	"sort"
	"time"

	"github.com/coursetrail/coursetrail/internal/domain"
	"github.com/coursetrail/coursetrail/internal/storage"
)

const (
	collection = "progress"
	docCourses = "courses"
)

// Service is the progress store.
type Service struct {
	kv      storage.KV
	records map[string]*domain.CourseProgressRecord
	now     func() time.Time
}

// NewService creates the progress store, loading any persisted state.
// Missing or corrupt persisted state starts the store empty.
func NewService(kv storage.KV) *Service {
	s := &Service{
		kv:      kv,
		records: make(map[string]*domain.CourseProgressRecord),
		now:     time.Now,
	}
	if err := kv.Load(collection, docCourses, &s.records); err != nil {
		s.records = make(map[string]*domain.CourseProgressRecord)
	}
	return s
}

func (s *Service) persist() error {
	if err := s.kv.Save(collection, docCourses, s.records); err != nil {
		return fmt.Errorf("persist progress: %w", err)
	}
	return nil
}

// InitCourseProgress creates a record for a course if one does not already
// exist. Re-initializing an existing course is a no-op.
func (s *Service) InitCourseProgress(courseID, title string, totalLessons int) error {
	if _, ok := s.records[courseID]; ok {
		return nil
	}
	s.records[courseID] = domain.NewCourseProgressRecord(courseID, title, totalLessons, s.now())
	return s.persist()
}

// UpdateLessonProgress marks a lesson complete or incomplete. Updates for a
// course that was never initialized are silently dropped.
func (s *Service) UpdateLessonProgress(courseID, lessonID string, completed bool) error {
	record, ok := s.records[courseID]
	if !ok {
		return nil
	}
	record.MarkLesson(lessonID, completed, s.now())
	return s.persist()
}

// SetCourseProgress overwrites a record's progress directly, bypassing
// recomputation. Used for bulk or external sync.
func (s *Service) SetCourseProgress(courseID string, progress int, completedLessons []string) error {
	record, ok := s.records[courseID]
	if !ok {
		return nil
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	record.Progress = progress
	record.CompletedLessons = append([]string{}, completedLessons...)
	record.Completed = progress == 100
	record.LastUpdated = s.now()
	return s.persist()
}

// ResetCourseProgress clears a record's completion state but keeps the
// record itself.
func (s *Service) ResetCourseProgress(courseID string) error {
	record, ok := s.records[courseID]
	if !ok {
		return nil
	}
	record.Reset(s.now())
	return s.persist()
}

// Get returns the record for a course, or nil if never initialized.
func (s *Service) Get(courseID string) *domain.CourseProgressRecord {
	return s.records[courseID]
}

// OverallProgress returns the arithmetic mean of progress across all
// records, 0 when there are none.
func (s *Service) OverallProgress() int {
	if len(s.records) == 0 {
		return 0
	}
	sum := 0
	for _, r := range s.records {
		sum += r.Progress
	}
	return sum / len(s.records)
}

// CompletedCount returns the number of completed courses.
func (s *Service) CompletedCount() int {
	n := 0
	for _, r := range s.records {
		if r.Completed {
			n++
		}
	}
	return n
}

// TotalLessonsCompleted sums completed lessons across all records.
func (s *Service) TotalLessonsCompleted() int {
	n := 0
	for _, r := range s.records {
		n += len(r.CompletedLessons)
	}
	return n
}

// RecentActivity returns records sorted by last update, newest first,
// truncated to limit. A limit <= 0 returns all records.
func (s *Service) RecentActivity(limit int) []*domain.CourseProgressRecord {
	out := make([]*domain.CourseProgressRecord, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastUpdated.After(out[j].LastUpdated)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// LearningStreakDays counts distinct calendar days with at least one record
// updated within the trailing 7 days, inclusive of today.
func (s *Service) LearningStreakDays() int {
	today := startOfDay(s.now())
	cutoff := today.AddDate(0, 0, -6)

	days := make(map[string]bool)
	for _, r := range s.records {
		day := startOfDay(r.LastUpdated)
		if !day.Before(cutoff) && !day.After(today) {
			days[day.Format("2006-01-02")] = true
		}
	}
	return len(days)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
