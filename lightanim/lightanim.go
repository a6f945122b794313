// SPDX-License-Identifier: GPL-2.0-or-later

// Package lightanim evaluates sector light effects over time.
package lightanim

import (
	gmath "math"

	"github.com/chewxy/math32"

	"godoom/light"
	"godoom/math"
	"godoom/rand"
)

// Mode selects how effects are evaluated, see r_flatlighteffects.
type Mode int

const (
	Animate Mode = iota
	Average
	Peak
)

// Evaluate returns the brightness of in at t seconds using mode m.
func Evaluate(in light.Info, t float64, m Mode) float32 {
	switch m {
	case Average:
		return Mean(in)
	case Peak:
		return Max(in)
	default:
		return Sample(in, t)
	}
}

// Sample returns the instantaneous brightness of in at t seconds.
func Sample(in light.Info, t float64) float32 {
	e := in.Effect
	if e == nil {
		return in.Level
	}
	switch e.Kind {
	case light.KindGlow:
		// glow ignores sync, all glowing sectors pulse together
		p := float32(math.Frac(t * float64(e.Speed)))
		f := 0.5 - 0.5*math32.Cos(2*math32.Pi*p)
		return math.Lerp(in.Level, e.AltLevel, f)
	case light.KindAlternate:
		p := (t + float64(e.Sync)) * float64(e.Speed)
		if float32(math.Frac(p)) < e.Duration {
			return in.Level
		}
		return e.AltLevel
	case light.KindRandom:
		// Time is cut into buckets of 1/Speed seconds. Each bucket is at
		// AltLevel with probability Duration, independent of its neighbours.
		p := (t + float64(e.Sync)) * float64(e.Speed)
		g := rand.New(math32.Float32bits(e.Sync))
		if g.Float32At(bucket(p)) < e.Duration {
			return e.AltLevel
		}
		return in.Level
	}
	return in.Level
}

func bucket(p float64) uint32 {
	if p <= 0 {
		return 0
	}
	return uint32(uint64(gmath.Floor(p)))
}

// Mean returns the time averaged brightness of in.
func Mean(in light.Info) float32 {
	e := in.Effect
	if e == nil {
		return in.Level
	}
	switch e.Kind {
	case light.KindGlow:
		return math.Lerp(in.Level, e.AltLevel, 0.5)
	case light.KindAlternate:
		return math.Lerp(e.AltLevel, in.Level, e.Duration)
	case light.KindRandom:
		return math.Lerp(in.Level, e.AltLevel, e.Duration)
	}
	return in.Level
}

// Max returns the brightest value the sector can reach.
func Max(in light.Info) float32 {
	if in.Effect == nil {
		return in.Level
	}
	return max(in.Level, in.Effect.AltLevel)
}
