package learning

import (
	"time"

	"github.com/coursetrail/coursetrail/internal/schedule"
)

// StudyTimer accrues study time while a study session is open. Each tick
// credits one minute, so the tick period should be a minute in normal use.
// The timer must be stopped when the session ends; a stopped timer accrues
// nothing.
type StudyTimer struct {
	svc      *Service
	interval *schedule.Interval
}

// NewStudyTimer creates a stopped timer ticking at the given period.
func NewStudyTimer(svc *Service, tick time.Duration) *StudyTimer {
	t := &StudyTimer{svc: svc}
	t.interval = schedule.NewInterval(tick, func() {
		_ = svc.AddStudyTime(1)
	})
	return t
}

// Start opens the study session.
func (t *StudyTimer) Start() { t.interval.Start() }

// Stop closes the study session.
func (t *StudyTimer) Stop() { t.interval.Stop() }

// Running reports whether a session is open.
func (t *StudyTimer) Running() bool { return t.interval.Running() }
