package domain

import (
	"math"
	"time"
)

// EnrolledCourse records that a learner has committed to a course, together
// with the per-lesson completion state that drives its progress percentage.
// Display metadata is copied from the catalog at enroll time.
type EnrolledCourse struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Instructor       string          `json:"instructor"`
	Thumbnail        string          `json:"thumbnail"`
	Category         string          `json:"category"`
	Level            string          `json:"level"`
	Duration         string          `json:"duration"`
	TotalLessons     int             `json:"total_lessons"`
	CompletedLessons map[string]bool `json:"completed_lessons"`
	Progress         int             `json:"progress"`
	Completed        bool            `json:"completed"`
	EnrolledDate     time.Time       `json:"enrolled_date"`
	LastAccessed     time.Time       `json:"last_accessed"`
	CompletedDate    *time.Time      `json:"completed_date,omitempty"`
}

// NewEnrolledCourse creates an enrollment for a catalog course.
func NewEnrolledCourse(course Course, now time.Time) *EnrolledCourse {
	total := course.TotalLessons
	if total < 0 {
		total = 0
	}
	return &EnrolledCourse{
		ID:               course.ID,
		Title:            course.Title,
		Instructor:       course.Instructor,
		Thumbnail:        course.Thumbnail,
		Category:         course.Category,
		Level:            course.Level,
		Duration:         course.Duration,
		TotalLessons:     total,
		CompletedLessons: make(map[string]bool),
		EnrolledDate:     now,
		LastAccessed:     now,
	}
}

// SetLessonDone adds or removes a lesson from the completed set and
// recomputes the derived progress fields.
func (e *EnrolledCourse) SetLessonDone(lessonID string, done bool, now time.Time) {
	if e.CompletedLessons == nil {
		e.CompletedLessons = make(map[string]bool)
	}
	if done {
		e.CompletedLessons[lessonID] = true
	} else {
		delete(e.CompletedLessons, lessonID)
	}
	e.LastAccessed = now
	e.Recompute(now)
}

// Recompute derives Progress and Completed from the completed-lesson set.
// CompletedDate is stamped the first time the course reaches 100% and never
// rewritten afterwards.
func (e *EnrolledCourse) Recompute(now time.Time) {
	e.Progress = ProgressPercent(len(e.CompletedLessons), e.TotalLessons)
	done := e.Progress == 100
	if done && e.CompletedDate == nil {
		t := now
		e.CompletedDate = &t
	}
	e.Completed = done
}

// ForceComplete marks the course complete regardless of the lesson tally.
func (e *EnrolledCourse) ForceComplete(now time.Time) {
	e.Progress = 100
	e.Completed = true
	e.LastAccessed = now
	if e.CompletedDate == nil {
		t := now
		e.CompletedDate = &t
	}
}

// InProgress reports whether the course has been started but not finished.
func (e *EnrolledCourse) InProgress() bool {
	return e.Progress > 0 && !e.Completed
}

// ProgressPercent derives the 0-100 progress integer from a completed-lesson
// count over a total. A course with no lessons is 0% by definition.
func ProgressPercent(done, total int) int {
	if total <= 0 {
		return 0
	}
	if done < 0 {
		done = 0
	}
	p := int(math.Round(100 * float64(done) / float64(total)))
	if p > 100 {
		p = 100
	}
	return p
}
