// SPDX-License-Identifier: GPL-2.0-or-later

package gametime

import (
	gmath "math"
	"testing"
	"time"

	"godoom/cvars"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func near(a, b float64) bool {
	return gmath.Abs(a-b) < 1e-9
}

func TestUpdateTime(t *testing.T) {
	c := &fakeClock{t: time.Unix(1000, 0)}
	h := newWithClock(c.now)

	// below 1/host_maxfps nothing happens
	c.advance(time.Millisecond)
	if h.UpdateTime() {
		t.Errorf("UpdateTime after 1ms = true")
	}
	c.advance(49 * time.Millisecond)
	if !h.UpdateTime() {
		t.Fatalf("UpdateTime after 50ms = false")
	}
	if !near(h.Time(), 0.05) || h.FrameCount() != 1 {
		t.Errorf("Time = %v, FrameCount = %d", h.Time(), h.FrameCount())
	}
	// long frames are clamped
	c.advance(time.Second)
	h.UpdateTime()
	if !near(h.FrameTime(), 0.1) || !near(h.Time(), 0.15) {
		t.Errorf("FrameTime = %v, Time = %v", h.FrameTime(), h.Time())
	}
}

func TestPause(t *testing.T) {
	c := &fakeClock{t: time.Unix(0, 0)}
	h := newWithClock(c.now)
	h.TogglePause()
	c.advance(50 * time.Millisecond)
	h.UpdateTime()
	if h.Time() != 0 || !h.Paused() {
		t.Errorf("paused Time = %v", h.Time())
	}
	h.TogglePause()
	c.advance(50 * time.Millisecond)
	h.UpdateTime()
	if !near(h.Time(), 0.05) {
		t.Errorf("Time = %v, want 0.05", h.Time())
	}
}

func TestTimeScale(t *testing.T) {
	defer cvars.HostTimeScale.Reset()
	cvars.HostTimeScale.SetValue(2)
	c := &fakeClock{t: time.Unix(0, 0)}
	h := newWithClock(c.now)
	c.advance(50 * time.Millisecond)
	h.UpdateTime()
	if !near(h.Time(), 0.1) {
		t.Errorf("Time = %v, want 0.1", h.Time())
	}
}
