// SPDX-License-Identifier: GPL-2.0-or-later

package wad

import (
	"bytes"
	"encoding/binary"
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"godoom/filesystem"
)

var (
	iwadMagic = [4]byte{'I', 'W', 'A', 'D'}
	pwadMagic = [4]byte{'P', 'W', 'A', 'D'}

	ErrNotFound = errors.New("not found")
	ErrFormat   = errors.New("bad wad format")
)

const (
	headerSize = 12
	entrySize  = 16
)

type header struct {
	ID        [4]byte
	LumpCount int32
	DirOffset int32
}

type entry struct {
	Offset int32
	Size   int32
	Name   [8]byte
}

type lump struct {
	name string
	data []byte
}

// Wad is a parsed IWAD or PWAD. Lumps keep their directory order.
type Wad struct {
	name  string
	iwad  bool
	lumps []lump
}

func lumpName(b []byte) string {
	if n := bytes.IndexByte(b, 0); n >= 0 {
		b = b[:n]
	}
	return strings.ToUpper(string(b))
}

// Parse decodes a complete wad held in data. Lump contents alias data.
func Parse(name string, data []byte) (*Wad, error) {
	var h header
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &h); err != nil {
		return nil, errors.Wrapf(ErrFormat, "%s: header: %v", name, err)
	}
	w := &Wad{name: name}
	switch h.ID {
	case iwadMagic:
		w.iwad = true
	case pwadMagic:
	default:
		return nil, errors.Wrapf(ErrFormat, "%s: no IWAD or PWAD id", name)
	}
	if h.LumpCount < 0 || h.DirOffset < headerSize {
		return nil, errors.Wrapf(ErrFormat, "%s: bad directory %d@%d", name, h.LumpCount, h.DirOffset)
	}
	end := int64(h.DirOffset) + int64(h.LumpCount)*entrySize
	if end > int64(len(data)) {
		return nil, errors.Wrapf(ErrFormat, "%s: directory exceeds file size", name)
	}
	entries := make([]entry, h.LumpCount)
	dir := bytes.NewReader(data[h.DirOffset:end])
	if err := binary.Read(dir, binary.LittleEndian, &entries); err != nil {
		return nil, errors.Wrapf(err, "%s: directory", name)
	}
	w.lumps = make([]lump, len(entries))
	for i, e := range entries {
		n := lumpName(e.Name[:])
		if e.Offset < 0 || e.Size < 0 || int64(e.Offset)+int64(e.Size) > int64(len(data)) {
			return nil, errors.Wrapf(ErrFormat, "%s: lump %d %q out of range", name, i, n)
		}
		w.lumps[i] = lump{
			name: n,
			data: data[e.Offset : e.Offset+e.Size],
		}
	}
	slog.Debug("Parsed wad", slog.String("name", name), slog.Int("lumps", len(w.lumps)), slog.Bool("iwad", w.iwad))
	return w, nil
}

// Load reads the wad called name from the filesystem search path.
func Load(name string) (*Wad, error) {
	data, err := filesystem.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load wad %s", name)
	}
	return Parse(name, data)
}

func (w *Wad) String() string {
	return w.name
}

// IWAD reports whether w is a main game wad.
func (w *Wad) IWAD() bool {
	return w.iwad
}

func (w *Wad) LumpCount() int {
	return len(w.lumps)
}

// Lump returns the contents of the last lump called name.
func (w *Wad) Lump(name string) ([]byte, error) {
	if i := w.find(strings.ToUpper(name), 0); i >= 0 {
		return w.lumps[i].data, nil
	}
	return nil, errors.Wrapf(ErrNotFound, "lump %s", name)
}

func (w *Wad) find(name string, from int) int {
	for i := len(w.lumps) - 1; i >= from; i-- {
		if w.lumps[i].name == name {
			return i
		}
	}
	return -1
}

var mapLumpNames = map[string]bool{
	"THINGS":   true,
	"LINEDEFS": true,
	"SIDEDEFS": true,
	"VERTEXES": true,
	"SEGS":     true,
	"SSECTORS": true,
	"NODES":    true,
	"SECTORS":  true,
	"REJECT":   true,
	"BLOCKMAP": true,
	"BEHAVIOR": true,
}

// MapLumps holds the lumps of one map needed for sector lighting.
type MapLumps struct {
	Name     string
	Linedefs []byte
	Sidedefs []byte
	Sectors  []byte
}

// MapLumps returns the lumps following the marker lump mapName.
func (w *Wad) MapLumps(mapName string) (MapLumps, error) {
	name := strings.ToUpper(mapName)
	marker := w.find(name, 0)
	if marker < 0 {
		return MapLumps{}, errors.Wrapf(ErrNotFound, "map %s in %s", name, w.name)
	}
	m := MapLumps{Name: name}
	found := map[string][]byte{}
	for _, l := range w.lumps[marker+1:] {
		if !mapLumpNames[l.name] {
			break
		}
		found[l.name] = l.data
	}
	for _, req := range []struct {
		name string
		dst  *[]byte
	}{
		{"LINEDEFS", &m.Linedefs},
		{"SIDEDEFS", &m.Sidedefs},
		{"SECTORS", &m.Sectors},
	} {
		d, ok := found[req.name]
		if !ok {
			return MapLumps{}, errors.Wrapf(ErrNotFound, "map %s: lump %s", name, req.name)
		}
		*req.dst = d
	}
	return m, nil
}

// Maps returns the names of all map markers in directory order.
func (w *Wad) Maps() []string {
	var maps []string
	for i := 0; i+1 < len(w.lumps); i++ {
		if len(w.lumps[i].data) == 0 && mapLumpNames[w.lumps[i+1].name] && !mapLumpNames[w.lumps[i].name] {
			maps = append(maps, w.lumps[i].name)
		}
	}
	return maps
}
