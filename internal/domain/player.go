package domain

import "time"

// MaxRecentLessons bounds the most-recently-viewed list.
const MaxRecentLessons = 20

// Transport attribute defaults for a freshly constructed player.
const (
	DefaultVolume       = 1.0
	DefaultPlaybackRate = 1.0
	DefaultQuality      = "auto"
)

// PlaybackState is the player's single global slot. The player is Idle when
// CurrentLesson is nil and Loaded otherwise; only one lesson can be current
// at a time.
type PlaybackState struct {
	CurrentLesson   *Lesson `json:"current_lesson,omitempty"`
	CurrentCourseID string  `json:"current_course_id,omitempty"`

	IsPlaying        bool    `json:"is_playing"`
	IsMuted          bool    `json:"is_muted"`
	IsFullscreen     bool    `json:"is_fullscreen"`
	Volume           float64 `json:"volume"`
	PlaybackRate     float64 `json:"playback_rate"`
	CurrentTime      float64 `json:"current_time"`
	Duration         float64 `json:"duration"`
	Quality          string  `json:"quality"`
	SubtitlesEnabled bool    `json:"subtitles_enabled"`

	// LastPosition is the saved position restored for the active
	// (course, lesson) pair, for resuming where the learner left off.
	LastPosition float64 `json:"last_position"`
}

// NewPlaybackState returns an Idle player with default transport attributes.
func NewPlaybackState() PlaybackState {
	return PlaybackState{
		Volume:       DefaultVolume,
		PlaybackRate: DefaultPlaybackRate,
		Quality:      DefaultQuality,
	}
}

// Loaded reports whether a lesson is current.
func (p PlaybackState) Loaded() bool {
	return p.CurrentLesson != nil
}

// SavedPosition is the last playback position recorded for a specific
// (course, lesson) pair. One record is persisted per pair so any lesson can
// be resumed without loading all positions at once.
type SavedPosition struct {
	CourseID  string    `json:"course_id"`
	LessonID  string    `json:"lesson_id"`
	Position  float64   `json:"position"` // seconds
	Timestamp time.Time `json:"timestamp"`
}

// RecentLesson is one entry in the bounded most-recently-viewed list,
// deduplicated by (course, lesson) and kept most-recent-first.
type RecentLesson struct {
	LessonID  string    `json:"lesson_id"`
	CourseID  string    `json:"course_id"`
	Title     string    `json:"title"`
	Thumbnail string    `json:"thumbnail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
