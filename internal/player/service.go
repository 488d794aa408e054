// Package player tracks the single globally current lesson, its transport
// state, and the saved playback position for every (course, lesson) pair a
// learner has watched, so any lesson can be resumed where it was left.
package player

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/coursetrail/coursetrail/internal/domain"
	"github.com/coursetrail/coursetrail/internal/storage"
)

const (
	collectionPositions = "positions"
	collectionPlayer    = "player"
	docRecent           = "recent"
)

// Service is the player store. A mutex guards state because the position
// autosaver ticks from its own goroutine; everything else is caller-driven.
type Service struct {
	kv      storage.KV
	surface MediaSurface
	now     func() time.Time

	mu     sync.Mutex
	state  domain.PlaybackState
	recent []domain.RecentLesson
}

// NewService creates the player store. A nil surface is replaced with a
// NopSurface. The recent-lessons list is loaded from storage; missing or
// corrupt state starts it empty.
func NewService(kv storage.KV, surface MediaSurface) *Service {
	if surface == nil {
		surface = NopSurface{}
	}
	s := &Service{
		kv:      kv,
		surface: surface,
		now:     time.Now,
		state:   domain.NewPlaybackState(),
	}
	if err := kv.Load(collectionPlayer, docRecent, &s.recent); err != nil {
		s.recent = nil
	}
	return s
}

// SetCurrentLesson makes a lesson current and starts playback. The transport
// time resets to 0; if a saved position exists for the (course, lesson) pair
// it is restored into LastPosition for the caller to seek to. The lesson is
// also pushed onto the recent list.
func (s *Service) SetCurrentLesson(lesson domain.Lesson, courseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := lesson
	s.state.CurrentLesson = &l
	s.state.CurrentCourseID = courseID
	s.state.CurrentTime = 0
	s.state.LastPosition = 0
	if lesson.Duration > 0 {
		s.state.Duration = lesson.Duration
	} else {
		s.state.Duration = 0
	}
	s.state.IsPlaying = true
	s.surface.Play()

	var saved domain.SavedPosition
	err := s.kv.Load(collectionPositions, domain.LessonKey(courseID, lesson.ID), &saved)
	if err == nil {
		s.state.LastPosition = saved.Position
	}

	s.pushRecent(lesson, courseID)
	if err := s.kv.Save(collectionPlayer, docRecent, s.recent); err != nil {
		return fmt.Errorf("persist recent lessons: %w", err)
	}
	return nil
}

// pushRecent unshifts an entry, deduplicated by (course, lesson) and capped.
func (s *Service) pushRecent(lesson domain.Lesson, courseID string) {
	entry := domain.RecentLesson{
		LessonID:  lesson.ID,
		CourseID:  courseID,
		Title:     lesson.Title,
		Thumbnail: lesson.Thumbnail,
		Timestamp: s.now(),
	}

	filtered := make([]domain.RecentLesson, 0, len(s.recent)+1)
	filtered = append(filtered, entry)
	for _, r := range s.recent {
		if r.CourseID == courseID && r.LessonID == lesson.ID {
			continue
		}
		filtered = append(filtered, r)
	}
	if len(filtered) > domain.MaxRecentLessons {
		filtered = filtered[:domain.MaxRecentLessons]
	}
	s.recent = filtered
}

// Play resumes playback. A no-op while Idle.
func (s *Service) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.Loaded() {
		return
	}
	s.surface.Play()
	s.state.IsPlaying = true
}

// Pause suspends playback. A no-op while Idle.
func (s *Service) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.Loaded() {
		return
	}
	s.surface.Pause()
	s.state.IsPlaying = false
}

// TogglePlay flips between playing and paused. A no-op while Idle.
func (s *Service) TogglePlay() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.Loaded() {
		return
	}
	if s.state.IsPlaying {
		s.surface.Pause()
	} else {
		s.surface.Play()
	}
	s.state.IsPlaying = !s.state.IsPlaying
}

// SetCurrentTime records the playback clock. While a lesson is loaded every
// update persists the saved position for its (course, lesson) pair; that
// write is what makes resume-where-you-left-off work. Negative times clamp
// to 0.
func (s *Service) SetCurrentTime(seconds float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setCurrentTimeLocked(seconds)
}

func (s *Service) setCurrentTimeLocked(seconds float64) error {
	if seconds < 0 {
		seconds = 0
	}
	s.state.CurrentTime = seconds
	if !s.state.Loaded() {
		return nil
	}

	saved := domain.SavedPosition{
		CourseID:  s.state.CurrentCourseID,
		LessonID:  s.state.CurrentLesson.ID,
		Position:  seconds,
		Timestamp: s.now(),
	}
	key := domain.LessonKey(saved.CourseID, saved.LessonID)
	if err := s.kv.Save(collectionPositions, key, saved); err != nil {
		return fmt.Errorf("persist position: %w", err)
	}
	return nil
}

// Seek moves the surface to a position and records it.
func (s *Service) Seek(seconds float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seconds < 0 {
		seconds = 0
	}
	s.surface.SetCurrentTime(seconds)
	return s.setCurrentTimeLocked(seconds)
}

// SetVolume sets the volume, clamped to [0, 1].
func (s *Service) SetVolume(volume float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	s.state.Volume = volume
	if !s.state.IsMuted {
		s.surface.SetVolume(volume)
	}
}

// ToggleMute flips the mute flag, preserving the volume setting.
func (s *Service) ToggleMute() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsMuted = !s.state.IsMuted
	if s.state.IsMuted {
		s.surface.SetVolume(0)
	} else {
		s.surface.SetVolume(s.state.Volume)
	}
}

// SetPlaybackRate sets the playback rate. Non-positive rates are ignored.
func (s *Service) SetPlaybackRate(rate float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rate <= 0 {
		return
	}
	s.state.PlaybackRate = rate
	s.surface.SetPlaybackRate(rate)
}

// SetQuality records the selected quality.
func (s *Service) SetQuality(quality string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Quality = quality
}

// SetSubtitles toggles subtitle rendering.
func (s *Service) SetSubtitles(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SubtitlesEnabled = enabled
}

// SetDuration records the media duration. Negative durations are treated
// as 0.
func (s *Service) SetDuration(seconds float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seconds < 0 {
		seconds = 0
	}
	s.state.Duration = seconds
}

// ToggleFullscreen enters or exits fullscreen on the surface. Only the
// matching transition is issued, so exiting while windowed stays a no-op.
func (s *Service) ToggleFullscreen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.IsFullscreen {
		s.surface.ExitFullscreen()
	} else {
		s.surface.RequestFullscreen()
	}
	s.state.IsFullscreen = !s.state.IsFullscreen
}

// NextLesson moves to the lesson after the current one in the supplied
// ordered list. Returns nil and leaves state unchanged when the player is
// Idle, the current lesson is not in the list, or it is the last entry.
func (s *Service) NextLesson(lessons []domain.Lesson) (*domain.Lesson, error) {
	return s.adjacentLesson(lessons, 1)
}

// PreviousLesson moves to the lesson before the current one. Boundary and
// not-found cases return nil like NextLesson.
func (s *Service) PreviousLesson(lessons []domain.Lesson) (*domain.Lesson, error) {
	return s.adjacentLesson(lessons, -1)
}

func (s *Service) adjacentLesson(lessons []domain.Lesson, offset int) (*domain.Lesson, error) {
	s.mu.Lock()
	if !s.state.Loaded() {
		s.mu.Unlock()
		return nil, nil
	}
	currentID := s.state.CurrentLesson.ID
	courseID := s.state.CurrentCourseID
	s.mu.Unlock()

	idx := -1
	for i, l := range lessons {
		if l.ID == currentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil
	}
	target := idx + offset
	if target < 0 || target >= len(lessons) {
		return nil, nil
	}

	next := lessons[target]
	if err := s.SetCurrentLesson(next, courseID); err != nil {
		return nil, err
	}
	return &next, nil
}

// ResetPlayer stops playback and returns the player to Idle with default
// transport attributes.
func (s *Service) ResetPlayer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Loaded() && s.state.IsPlaying {
		s.surface.Pause()
	}
	s.state = domain.NewPlaybackState()
}

// State returns a snapshot of the playback state.
func (s *Service) State() domain.PlaybackState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.state
	if s.state.CurrentLesson != nil {
		l := *s.state.CurrentLesson
		state.CurrentLesson = &l
	}
	return state
}

// SavedPositionFor returns the stored position for a (course, lesson) pair,
// or nil if none was recorded or the record is unreadable.
func (s *Service) SavedPositionFor(courseID, lessonID string) *domain.SavedPosition {
	var saved domain.SavedPosition
	err := s.kv.Load(collectionPositions, domain.LessonKey(courseID, lessonID), &saved)
	if err != nil {
		return nil
	}
	return &saved
}

// RecentLessons returns the most-recently-viewed list, newest first.
func (s *Service) RecentLessons() []domain.RecentLesson {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.RecentLesson, len(s.recent))
	copy(out, s.recent)
	return out
}

// ClearHistory wipes all saved positions and the recent list.
func (s *Service) ClearHistory() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.kv.List(collectionPositions)
	if err != nil {
		return fmt.Errorf("list positions: %w", err)
	}
	for _, id := range ids {
		if err := s.kv.Delete(collectionPositions, id); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("delete position %s: %w", id, err)
		}
	}

	s.recent = nil
	if err := s.kv.Delete(collectionPlayer, docRecent); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("delete recent lessons: %w", err)
	}
	return nil
}
