// SPDX-License-Identifier: GPL-2.0-or-later

// Package light classifies the lighting of map sectors.
//
// A sector has a steady brightness and, depending on its type, an effect
// description which a renderer samples every frame. Everything in this
// package is pure and safe for concurrent use.
package light

import (
	"fmt"

	"godoom/math"
)

// Level is a raw light value as stored in a sector record.
type Level uint8

// SectorType is the special type code of a sector record.
type SectorType uint16

// MaxLevel is the brightest raw light value.
const MaxLevel Level = 255

const (
	// bias applied by Darken/Brighten before quantization
	contrastStep = 16
	// 32 light bands
	bandShift = 3
	maxBand   = 31
)

// Sector types that carry a light effect. The values are fixed by the map
// format.
const (
	Flash          SectorType = 1
	FastStrobe1    SectorType = 2
	SlowStrobe     SectorType = 3
	FastStrobe2    SectorType = 4
	Glow           SectorType = 8
	SlowStrobeSync SectorType = 12
	FastStrobeSync SectorType = 13
	Flicker        SectorType = 17
)

const (
	flashSpeed         = 20.0
	flashDuration      = 0.06
	flickerSpeed       = 8.0
	flickerDuration    = 0.5
	slowStrobeSpeed    = 1.0
	slowStrobeDuration = 0.85
	fastStrobeSpeed    = 2.0
	fastStrobeDuration = 0.7
	glowSpeed          = 0.5
)

// Contrast is a directional bias applied before quantization.
type Contrast int

const (
	None Contrast = iota
	Darken
	Brighten
)

func (c Contrast) String() string {
	switch c {
	case None:
		return "none"
	case Darken:
		return "darken"
	case Brighten:
		return "brighten"
	}
	return fmt.Sprintf("Contrast(%d)", int(c))
}

// EffectKind selects the waveform the animator applies.
type EffectKind int

const (
	KindGlow EffectKind = iota
	KindRandom
	KindAlternate
)

func (k EffectKind) String() string {
	switch k {
	case KindGlow:
		return "glow"
	case KindRandom:
		return "random"
	case KindAlternate:
		return "alternate"
	}
	return fmt.Sprintf("EffectKind(%d)", int(k))
}

// Info is the lighting of one sector. Effect is nil for static sectors.
type Info struct {
	Level  float32
	Effect *Effect
}

// Effect describes an oscillation between Info.Level and AltLevel.
// AltLevel may be brighter or darker than Info.Level.
type Effect struct {
	AltLevel float32
	Speed    float32
	Duration float32 // unused for KindGlow
	Sync     float32 // phase offset, 0 for synchronized effects
	Kind     EffectKind
}

// Normalize applies the contrast c to l and quantizes the result into one
// of 32 bands in [0,1].
func Normalize(l Level, c Contrast) float32 {
	v := int(l)
	switch c {
	case Darken:
		v = math.Clamp(0, v-contrastStep, int(MaxLevel))
	case Brighten:
		v = math.Clamp(0, v+contrastStep, int(MaxLevel))
	}
	return float32(v>>bandShift) / maxBand
}

// Sync derives a phase offset from a sector identifier. The result is in
// [0, 65535/15] and depends only on id.
func Sync(id int) float32 {
	return float32((uint64(id)*1664525+1013904223)&0xffff) / 15.0
}

// Animated reports whether sectors of type t have a light effect.
func Animated(t SectorType) bool {
	switch t {
	case Flash, FastStrobe1, FastStrobe2, FastStrobeSync,
		SlowStrobe, SlowStrobeSync, Glow, Flicker:
		return true
	}
	return false
}

// Classify computes the lighting of a sector with light base and type t.
// neighborMin is the lowest light of the adjoining sectors and id a stable
// identifier of the sector.
func Classify(base, neighborMin Level, t SectorType, id int, c Contrast) Info {
	level := Normalize(base, c)
	if !Animated(t) {
		return Info{Level: level}
	}
	alt := Normalize(neighborMin, c)
	if alt == level {
		return Info{Level: level}
	}
	var sync float32
	switch t {
	case SlowStrobeSync, FastStrobeSync, Glow:
	default:
		sync = Sync(id)
	}
	e := &Effect{
		AltLevel: alt,
		Sync:     sync,
	}
	switch t {
	case Flash:
		e.Kind, e.Speed, e.Duration = KindRandom, flashSpeed, flashDuration
	case Flicker:
		e.Kind, e.Speed, e.Duration = KindRandom, flickerSpeed, flickerDuration
	case SlowStrobe, SlowStrobeSync:
		e.Kind, e.Speed, e.Duration = KindAlternate, slowStrobeSpeed, slowStrobeDuration
	case FastStrobe1, FastStrobe2, FastStrobeSync:
		e.Kind, e.Speed, e.Duration = KindAlternate, fastStrobeSpeed, fastStrobeDuration
	case Glow:
		e.Kind, e.Speed, e.Duration = KindGlow, glowSpeed, 0
	default:
		panic(fmt.Sprintf("light: animated sector type %d has no effect", t))
	}
	return Info{Level: level, Effect: e}
}
