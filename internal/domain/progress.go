package domain

import (
	"slices"
	"time"
)

// CourseProgressRecord is the progress tracker's own per-course ledger. It is
// created by an explicit init call, not by enrollment, and lives independently
// of the enrollment record for the same course.
type CourseProgressRecord struct {
	CourseID         string    `json:"course_id"`
	CourseTitle      string    `json:"course_title"`
	TotalLessons     int       `json:"total_lessons"`
	CompletedLessons []string  `json:"completed_lessons"`
	Progress         int       `json:"progress"`
	Completed        bool      `json:"completed"`
	StartedDate      time.Time `json:"started_date"`
	LastUpdated      time.Time `json:"last_updated"`
}

// NewCourseProgressRecord starts an empty ledger entry for a course.
func NewCourseProgressRecord(courseID, title string, totalLessons int, now time.Time) *CourseProgressRecord {
	if totalLessons < 0 {
		totalLessons = 0
	}
	return &CourseProgressRecord{
		CourseID:         courseID,
		CourseTitle:      title,
		TotalLessons:     totalLessons,
		CompletedLessons: []string{},
		StartedDate:      now,
		LastUpdated:      now,
	}
}

// MarkLesson adds or removes a lesson and recomputes the derived fields.
func (r *CourseProgressRecord) MarkLesson(lessonID string, done bool, now time.Time) {
	if done {
		if !slices.Contains(r.CompletedLessons, lessonID) {
			r.CompletedLessons = append(r.CompletedLessons, lessonID)
		}
	} else {
		r.CompletedLessons = slices.DeleteFunc(r.CompletedLessons, func(id string) bool {
			return id == lessonID
		})
	}
	r.Recompute(now)
}

// Recompute derives Progress and Completed from the lesson list.
func (r *CourseProgressRecord) Recompute(now time.Time) {
	r.Progress = ProgressPercent(len(r.CompletedLessons), r.TotalLessons)
	r.Completed = r.Progress == 100
	r.LastUpdated = now
}

// Reset clears all completion state but keeps the record itself.
func (r *CourseProgressRecord) Reset(now time.Time) {
	r.CompletedLessons = []string{}
	r.Progress = 0
	r.Completed = false
	r.LastUpdated = now
}
