package schedule

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestInterval_StartStop(t *testing.T) {
	var ticks atomic.Int64
	interval := NewInterval(5*time.Millisecond, func() { ticks.Add(1) })

	if interval.Running() {
		t.Error("Running() = true before Start")
	}

	interval.Start()
	if !interval.Running() {
		t.Error("Running() = false after Start")
	}

	deadline := time.After(time.Second)
	for ticks.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("no ticks within a second")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	interval.Stop()
	if interval.Running() {
		t.Error("Running() = true after Stop")
	}

	// No further ticks after Stop settles.
	time.Sleep(20 * time.Millisecond)
	settled := ticks.Load()
	time.Sleep(30 * time.Millisecond)
	if got := ticks.Load(); got != settled {
		t.Errorf("ticks after Stop = %d, want %d", got, settled)
	}
}

func TestInterval_StartIdempotent(t *testing.T) {
	var ticks atomic.Int64
	interval := NewInterval(5*time.Millisecond, func() { ticks.Add(1) })
	defer interval.Stop()

	interval.Start()
	interval.Start() // must not spawn a second ticker

	time.Sleep(30 * time.Millisecond)
	interval.Stop()

	// Rough bound: a doubled ticker would land near twice this.
	if got := ticks.Load(); got > 12 {
		t.Errorf("ticks = %d, want single ticker pace", got)
	}
}

func TestInterval_StopIdempotent(t *testing.T) {
	interval := NewInterval(time.Millisecond, func() {})

	interval.Stop() // stopped interval, must not panic
	interval.Start()
	interval.Stop()
	interval.Stop()
}

func TestInterval_Restart(t *testing.T) {
	var ticks atomic.Int64
	interval := NewInterval(5*time.Millisecond, func() { ticks.Add(1) })

	interval.Start()
	time.Sleep(15 * time.Millisecond)
	interval.Stop()

	first := ticks.Load()
	interval.Start()
	defer interval.Stop()

	deadline := time.After(time.Second)
	for ticks.Load() == first {
		select {
		case <-deadline:
			t.Fatal("no ticks after restart")
		default:
			time.Sleep(time.Millisecond)
		}
	}
}
