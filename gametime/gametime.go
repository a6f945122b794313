// SPDX-License-Identifier: GPL-2.0-or-later

package gametime

import (
	"time"

	"godoom/cvars"
	"godoom/math"
)

// GameTime is the frame clock driving light animation. Time is scaled by
// host_timescale and does not advance while paused.
type GameTime struct {
	start      time.Time
	now        func() time.Time
	realTime   float64
	oldTime    float64
	time       float64
	frameTime  float64
	frameCount int
	paused     bool
}

func New() *GameTime {
	return newWithClock(time.Now)
}

func newWithClock(now func() time.Time) *GameTime {
	return &GameTime{
		start:     now(),
		now:       now,
		frameTime: 0.1,
	}
}

func (h *GameTime) Time() float64      { return h.time }
func (h *GameTime) FrameTime() float64 { return h.frameTime }
func (h *GameTime) FrameCount() int    { return h.frameCount }
func (h *GameTime) Paused() bool       { return h.paused }

func (h *GameTime) TogglePause() {
	h.paused = !h.paused
}

// UpdateTime advances the clock.
// Returns false if it would exceed max fps
func (h *GameTime) UpdateTime() bool {
	h.realTime = h.now().Sub(h.start).Seconds()
	maxFPS := math.Clamp(10.0, float64(cvars.HostMaxFps.Value()), 1000.0)
	if h.realTime-h.oldTime < 1/maxFPS {
		return false
	}
	h.frameTime = h.realTime - h.oldTime
	h.oldTime = h.realTime

	if cvars.HostTimeScale.Value() > 0 {
		h.frameTime *= float64(cvars.HostTimeScale.Value())
	} else if cvars.HostFrameRate.Value() > 0 {
		h.frameTime = float64(cvars.HostFrameRate.Value())
	} else {
		h.frameTime = math.Clamp(0.001, h.frameTime, 0.1)
	}
	if !h.paused {
		h.time += h.frameTime
	}
	h.frameCount++
	return true
}
