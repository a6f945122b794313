// SPDX-License-Identifier: GPL-2.0-or-later

// Package rand provides position based noise. The value at an index depends
// only on the index and the seed, so callers can sample any point in time
// without keeping generator state.
package rand

const (
	noise1 = 0xB5297A4D
	noise2 = 0x68E31DA4
	noise3 = 0x1B56C4E9
)

type Generator struct {
	seed uint32
}

func New(seed uint32) Generator {
	return Generator{seed: seed}
}

func noise(p uint32, s uint32) uint32 {
	m := p
	m *= noise1
	m += s
	m ^= (m >> 8)
	m *= noise2
	m ^= (m << 8)
	m *= noise3
	m ^= (m >> 8)
	return m
}

func (g Generator) Uint32At(i uint32) uint32 {
	return noise(i, g.seed)
}

// Float32At returns a value in [0,1).
func (g Generator) Float32At(i uint32) float32 {
	return float32(g.Uint32At(i)%(1<<26)) / (1 << 26)
}
