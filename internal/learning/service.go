// Package learning tracks study activity around lessons: its own completion
// ledger, bookmarks, per-lesson notes, accumulated study time, and the daily
// streak. It is deliberately independent of the enrollment and progress
// stores; callers that want all three updated must call all three.
package learning

import (
	"fmt"
	"sync"
	"time"

	"github.com/coursetrail/coursetrail/internal/domain"
	"github.com/coursetrail/coursetrail/internal/storage"
)

const (
	collection = "learning"
	docState   = "state"

	// DefaultStudyIncrement is the study time credited per lesson
	// completion.
	DefaultStudyIncrement = 15 // minutes

	dayFormat = "2006-01-02"
)

type state struct {
	Ledger       map[string]map[string]domain.LessonRecord `json:"ledger"`
	Bookmarks    map[string]bool                           `json:"bookmarks"`
	Notes        map[string]domain.LessonNote              `json:"notes"`
	StudyMinutes int                                       `json:"study_minutes"`
	StreakDays   int                                       `json:"streak_days"`
	LastStudyDay string                                    `json:"last_study_day,omitempty"`
}

func emptyState() state {
	return state{
		Ledger:    make(map[string]map[string]domain.LessonRecord),
		Bookmarks: make(map[string]bool),
		Notes:     make(map[string]domain.LessonNote),
	}
}

// CourseProgress is this store's own view of a course, computed from its
// ledger alone.
type CourseProgress struct {
	CompletedLessons int
	TrackedLessons   int
	Percent          int
	LastActivity     time.Time
}

// StudyStats aggregates the store's counters.
type StudyStats struct {
	LessonsCompleted int
	CoursesTracked   int
	StudyMinutes     int
	StreakDays       int
	CompletionRate   float64 // completed / tracked ledger entries
}

// Service is the learning store. A mutex guards state because the study
// timer ticks from its own goroutine.
type Service struct {
	kv             storage.KV
	studyIncrement int
	now            func() time.Time

	mu    sync.Mutex
	state state
}

// NewService creates the learning store, loading any persisted state.
// Missing or corrupt persisted state starts the store empty.
func NewService(kv storage.KV) *Service {
	s := &Service{
		kv:             kv,
		state:          emptyState(),
		studyIncrement: DefaultStudyIncrement,
		now:            time.Now,
	}
	if err := kv.Load(collection, docState, &s.state); err != nil {
		s.state = emptyState()
	}
	if s.state.Ledger == nil {
		s.state.Ledger = make(map[string]map[string]domain.LessonRecord)
	}
	if s.state.Bookmarks == nil {
		s.state.Bookmarks = make(map[string]bool)
	}
	if s.state.Notes == nil {
		s.state.Notes = make(map[string]domain.LessonNote)
	}
	return s
}

// SetStudyIncrement overrides the study time credited per completion.
func (s *Service) SetStudyIncrement(minutes int) {
	if minutes > 0 {
		s.studyIncrement = minutes
	}
}

func (s *Service) persist() error {
	if err := s.kv.Save(collection, docState, s.state); err != nil {
		return fmt.Errorf("persist learning state: %w", err)
	}
	return nil
}

// UpdateProgress records a lesson completion (or its removal) in this
// store's ledger at the given timestamp. Completions credit study time and
// advance the daily streak; the streak increments when the previous activity
// was yesterday, resets to 1 after a gap, and is untouched by repeat
// activity on the same day.
func (s *Service) UpdateProgress(courseID, lessonID string, completed bool, ts time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ts.IsZero() {
		ts = s.now()
	}

	lessons, ok := s.state.Ledger[courseID]
	if !ok {
		lessons = make(map[string]domain.LessonRecord)
		s.state.Ledger[courseID] = lessons
	}
	lessons[lessonID] = domain.LessonRecord{Completed: completed, Timestamp: ts}

	if completed {
		s.state.StudyMinutes += s.studyIncrement
	}
	s.advanceStreak(ts)

	return s.persist()
}

func (s *Service) advanceStreak(ts time.Time) {
	day := ts.Format(dayFormat)
	if s.state.LastStudyDay == day {
		return
	}
	yesterday := ts.AddDate(0, 0, -1).Format(dayFormat)
	if s.state.LastStudyDay == yesterday {
		s.state.StreakDays++
	} else {
		s.state.StreakDays = 1
	}
	s.state.LastStudyDay = day
}

// ToggleBookmark flips bookmark membership for a (course, lesson) pair and
// returns the new membership. A non-empty note also writes the lesson note
// for the same pair.
func (s *Service) ToggleBookmark(courseID, lessonID, note string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.LessonKey(courseID, lessonID)
	if s.state.Bookmarks[key] {
		delete(s.state.Bookmarks, key)
	} else {
		s.state.Bookmarks[key] = true
	}

	if note != "" {
		s.writeNote(key, note)
	}

	if err := s.persist(); err != nil {
		return false, err
	}
	return s.state.Bookmarks[key], nil
}

// AddNote writes or overwrites the note for a (course, lesson) pair.
func (s *Service) AddNote(courseID, lessonID, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writeNote(domain.LessonKey(courseID, lessonID), content)
	return s.persist()
}

func (s *Service) writeNote(key, content string) {
	now := s.now()
	existing, ok := s.state.Notes[key]
	if !ok {
		s.state.Notes[key] = domain.LessonNote{Content: content, Timestamp: now, UpdatedAt: now}
		return
	}
	existing.Content = content
	existing.UpdatedAt = now
	s.state.Notes[key] = existing
}

// GetCourseProgress computes a course's progress from this store's ledger.
func (s *Service) GetCourseProgress(courseID string) CourseProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	lessons := s.state.Ledger[courseID]
	cp := CourseProgress{TrackedLessons: len(lessons)}
	for _, record := range lessons {
		if record.Completed {
			cp.CompletedLessons++
		}
		if record.Timestamp.After(cp.LastActivity) {
			cp.LastActivity = record.Timestamp
		}
	}
	cp.Percent = domain.ProgressPercent(cp.CompletedLessons, cp.TrackedLessons)
	return cp
}

// IsBookmarked reports bookmark membership for a (course, lesson) pair.
func (s *Service) IsBookmarked(courseID, lessonID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Bookmarks[domain.LessonKey(courseID, lessonID)]
}

// IsLessonCompleted reports whether this store's ledger has the lesson
// completed.
func (s *Service) IsLessonCompleted(courseID, lessonID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.state.Ledger[courseID][lessonID]
	return ok && record.Completed
}

// NoteFor returns the note for a (course, lesson) pair, if any.
func (s *Service) NoteFor(courseID, lessonID string) (domain.LessonNote, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.state.Notes[domain.LessonKey(courseID, lessonID)]
	return note, ok
}

// ResetCourseProgress removes a course's entries from this store's ledger
// entirely. Bookmarks and notes are untouched.
func (s *Service) ResetCourseProgress(courseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.Ledger[courseID]; !ok {
		return nil
	}
	delete(s.state.Ledger, courseID)
	return s.persist()
}

// AddStudyTime credits study minutes directly; used by the study timer.
func (s *Service) AddStudyTime(minutes int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if minutes <= 0 {
		return nil
	}
	s.state.StudyMinutes += minutes
	return s.persist()
}

// StudyStats aggregates totals across this store's ledger only.
func (s *Service) StudyStats() StudyStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := StudyStats{
		CoursesTracked: len(s.state.Ledger),
		StudyMinutes:   s.state.StudyMinutes,
		StreakDays:     s.state.StreakDays,
	}
	tracked := 0
	for _, lessons := range s.state.Ledger {
		for _, record := range lessons {
			tracked++
			if record.Completed {
				stats.LessonsCompleted++
			}
		}
	}
	if tracked > 0 {
		stats.CompletionRate = float64(stats.LessonsCompleted) / float64(tracked)
	}
	return stats
}
