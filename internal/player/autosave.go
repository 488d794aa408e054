package player

import (
	"time"

	"github.com/coursetrail/coursetrail/internal/schedule"
)

// Autosaver periodically reads the surface's playback clock into the player
// while a lesson is playing, so the last position survives even if the
// caller never reports time updates itself. It must be stopped when the
// owning session ends; a stopped autosaver writes nothing.
type Autosaver struct {
	svc      *Service
	interval *schedule.Interval
}

// NewAutosaver creates a stopped autosaver ticking at the given period.
func NewAutosaver(svc *Service, every time.Duration) *Autosaver {
	a := &Autosaver{svc: svc}
	a.interval = schedule.NewInterval(every, a.tick)
	return a
}

func (a *Autosaver) tick() {
	state := a.svc.State()
	if !state.Loaded() || !state.IsPlaying {
		return
	}
	// Persisting stale data after navigation is prevented by the
	// Loaded check: ResetPlayer drops the current lesson first.
	_ = a.svc.SetCurrentTime(a.svc.surface.CurrentTime())
}

// Start begins periodic saving.
func (a *Autosaver) Start() { a.interval.Start() }

// Stop cancels periodic saving.
func (a *Autosaver) Stop() { a.interval.Stop() }

// Running reports whether the autosaver is active.
func (a *Autosaver) Running() bool { return a.interval.Running() }
