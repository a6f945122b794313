// SPDX-License-Identifier: GPL-2.0-or-later

// Package level builds the sector graph of a map and classifies the lighting
// of its sectors.
package level

import (
	"log/slog"
	"sync"

	"github.com/pkg/errors"

	"godoom/light"
	"godoom/math"
	"godoom/wad"
)

var ErrBadReference = errors.New("bad reference")

// Level is a read-only view of one map. It is safe for concurrent use.
type Level struct {
	Name    string
	Sectors []wad.Sector
	Lines   []wad.Line
	Sides   []wad.Side

	// neighbors[i] lists the sectors sharing a two-sided line with sector i
	neighbors [][]int
}

// New validates the references between lines, sides and sectors and
// computes sector adjacency.
func New(name string, sectors []wad.Sector, lines []wad.Line, sides []wad.Side) (*Level, error) {
	for i, s := range sides {
		if s.Sector < 0 || s.Sector >= len(sectors) {
			return nil, errors.Wrapf(ErrBadReference, "%s: side %d references sector %d", name, i, s.Sector)
		}
	}
	for i, l := range lines {
		for _, sd := range []int{l.Right, l.Left} {
			if sd != wad.NoSide && (sd < 0 || sd >= len(sides)) {
				return nil, errors.Wrapf(ErrBadReference, "%s: line %d references side %d", name, i, sd)
			}
		}
	}
	lv := &Level{
		Name:    name,
		Sectors: sectors,
		Lines:   lines,
		Sides:   sides,
	}
	lv.neighbors = lv.adjacency()
	return lv, nil
}

// Load reads the map mapName from w.
func Load(w *wad.Wad, mapName string) (*Level, error) {
	m, err := w.MapLumps(mapName)
	if err != nil {
		return nil, err
	}
	sectors, err := wad.ReadSectors(m.Sectors)
	if err != nil {
		return nil, errors.Wrapf(err, "map %s", m.Name)
	}
	lines, err := wad.ReadLines(m.Linedefs)
	if err != nil {
		return nil, errors.Wrapf(err, "map %s", m.Name)
	}
	sides, err := wad.ReadSides(m.Sidedefs)
	if err != nil {
		return nil, errors.Wrapf(err, "map %s", m.Name)
	}
	lv, err := New(m.Name, sectors, lines, sides)
	if err != nil {
		return nil, err
	}
	slog.Info("Loaded map",
		slog.String("map", m.Name),
		slog.Int("sectors", len(sectors)),
		slog.Int("lines", len(lines)),
		slog.Int("sides", len(sides)))
	return lv, nil
}

func (lv *Level) adjacency() [][]int {
	n := make([][]int, len(lv.Sectors))
	seen := make([]map[int]bool, len(lv.Sectors))
	add := func(a, b int) {
		if a == b {
			return
		}
		if seen[a] == nil {
			seen[a] = map[int]bool{}
		}
		if seen[a][b] {
			return
		}
		seen[a][b] = true
		n[a] = append(n[a], b)
	}
	for _, l := range lv.Lines {
		if !l.TwoSided() {
			continue
		}
		front := lv.Sides[l.Right].Sector
		back := lv.Sides[l.Left].Sector
		add(front, back)
		add(back, front)
	}
	return n
}

// Neighbors returns the sectors directly adjacent to sector i.
func (lv *Level) Neighbors(i int) []int {
	return lv.neighbors[i]
}

// SectorLevel returns the light value of sector i clamped to the light
// range.
func (lv *Level) SectorLevel(i int) light.Level {
	return light.Level(math.Clamp(0, int(lv.Sectors[i].Light), int(light.MaxLevel)))
}

// SectorMinLight returns the lowest light of sector i and the sectors
// sharing a two-sided line with it.
func (lv *Level) SectorMinLight(i int) light.Level {
	m := lv.SectorLevel(i)
	for _, n := range lv.Neighbors(i) {
		m = min(m, lv.SectorLevel(n))
	}
	return m
}

// SectorID returns a stable identifier of sector i.
func (lv *Level) SectorID(i int) int {
	return i
}

// SectorLight classifies the lighting of sector i.
func (lv *Level) SectorLight(i int, c light.Contrast) light.Info {
	return light.Classify(
		lv.SectorLevel(i),
		lv.SectorMinLight(i),
		light.SectorType(lv.Sectors[i].Type),
		lv.SectorID(i),
		c)
}

const parallelThreshold = 1024

// Lights classifies all sectors. Large maps are split across goroutines.
func (lv *Level) Lights(c light.Contrast) []light.Info {
	infos := make([]light.Info, len(lv.Sectors))
	if len(infos) < parallelThreshold {
		for i := range infos {
			infos[i] = lv.SectorLight(i, c)
		}
		return infos
	}
	var wg sync.WaitGroup
	for start := 0; start < len(infos); start += parallelThreshold {
		end := min(start+parallelThreshold, len(infos))
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				infos[i] = lv.SectorLight(i, c)
			}
		}(start, end)
	}
	wg.Wait()
	return infos
}

// Animated returns the indices of all sectors with a light effect.
func Animated(infos []light.Info) []int {
	var idx []int
	for i, in := range infos {
		if in.Effect != nil {
			idx = append(idx, i)
		}
	}
	return idx
}
