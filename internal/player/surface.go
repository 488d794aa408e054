package player

// MediaSurface is the capability interface to the playable media element the
// player issues transport commands against. Implementations wrap a real
// media backend; tests use a fake. All commands are fire-and-forget: the
// player's state, not the surface, is the source of truth.
type MediaSurface interface {
	Play()
	Pause()
	SetCurrentTime(seconds float64)
	SetVolume(volume float64)
	SetPlaybackRate(rate float64)
	RequestFullscreen()
	ExitFullscreen()

	// Readbacks used by the position autosaver.
	CurrentTime() float64
	Duration() float64
}

// NopSurface is a MediaSurface that does nothing, for headless use.
type NopSurface struct{}

func (NopSurface) Play()                       {}
func (NopSurface) Pause()                      {}
func (NopSurface) SetCurrentTime(float64)      {}
func (NopSurface) SetVolume(float64)           {}
func (NopSurface) SetPlaybackRate(float64)     {}
func (NopSurface) RequestFullscreen()          {}
func (NopSurface) ExitFullscreen()             {}
func (NopSurface) CurrentTime() float64        { return 0 }
func (NopSurface) Duration() float64           { return 0 }
