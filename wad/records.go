// SPDX-License-Identifier: GPL-2.0-or-later

package wad

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
)

// NoSide marks a missing sidedef in a linedef.
const NoSide = 0xFFFF

// Linedef flags
const (
	LineBlocking      = 0x0001
	LineBlockMonsters = 0x0002
	LineTwoSided      = 0x0004
)

type binSector struct {
	FloorHeight    int16
	CeilingHeight  int16
	FloorTexture   [8]byte
	CeilingTexture [8]byte
	Light          int16
	Type           uint16
	Tag            int16
}

type binLine struct {
	V1, V2  uint16
	Flags   uint16
	Special uint16
	Tag     int16
	Right   uint16
	Left    uint16
}

type binSide struct {
	XOffset, YOffset int16
	Upper            [8]byte
	Lower            [8]byte
	Middle           [8]byte
	Sector           uint16
}

const (
	sectorSize = 26
	lineSize   = 14
	sideSize   = 30
)

type Sector struct {
	FloorHeight    int16
	CeilingHeight  int16
	FloorTexture   string
	CeilingTexture string
	Light          int16
	Type           uint16
	Tag            int16
}

type Line struct {
	V1, V2  int
	Flags   uint16
	Special uint16
	Tag     int16
	Right   int // NoSide if missing
	Left    int // NoSide if missing
}

// TwoSided reports whether the line separates two sectors.
func (l *Line) TwoSided() bool {
	return l.Left != NoSide && l.Right != NoSide
}

type Side struct {
	XOffset, YOffset int16
	Upper            string
	Lower            string
	Middle           string
	Sector           int
}

func readRecords[T any](lump string, data []byte, size int) ([]T, error) {
	if len(data)%size != 0 {
		return nil, errors.Wrapf(ErrFormat, "%s: size %d is not a multiple of %d", lump, len(data), size)
	}
	recs := make([]T, len(data)/size)
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, recs); err != nil {
		return nil, errors.Wrap(err, lump)
	}
	return recs, nil
}

// ReadSectors decodes a SECTORS lump.
func ReadSectors(data []byte) ([]Sector, error) {
	recs, err := readRecords[binSector]("SECTORS", data, sectorSize)
	if err != nil {
		return nil, err
	}
	sectors := make([]Sector, len(recs))
	for i, r := range recs {
		sectors[i] = Sector{
			FloorHeight:    r.FloorHeight,
			CeilingHeight:  r.CeilingHeight,
			FloorTexture:   lumpName(r.FloorTexture[:]),
			CeilingTexture: lumpName(r.CeilingTexture[:]),
			Light:          r.Light,
			Type:           r.Type,
			Tag:            r.Tag,
		}
	}
	return sectors, nil
}

// ReadLines decodes a LINEDEFS lump.
func ReadLines(data []byte) ([]Line, error) {
	recs, err := readRecords[binLine]("LINEDEFS", data, lineSize)
	if err != nil {
		return nil, err
	}
	lines := make([]Line, len(recs))
	for i, r := range recs {
		lines[i] = Line{
			V1:      int(r.V1),
			V2:      int(r.V2),
			Flags:   r.Flags,
			Special: r.Special,
			Tag:     r.Tag,
			Right:   int(r.Right),
			Left:    int(r.Left),
		}
	}
	return lines, nil
}

// ReadSides decodes a SIDEDEFS lump.
func ReadSides(data []byte) ([]Side, error) {
	recs, err := readRecords[binSide]("SIDEDEFS", data, sideSize)
	if err != nil {
		return nil, err
	}
	sides := make([]Side, len(recs))
	for i, r := range recs {
		sides[i] = Side{
			XOffset: r.XOffset,
			YOffset: r.YOffset,
			Upper:   lumpName(r.Upper[:]),
			Lower:   lumpName(r.Lower[:]),
			Middle:  lumpName(r.Middle[:]),
			Sector:  int(r.Sector),
		}
	}
	return sides, nil
}
