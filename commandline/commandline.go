// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

const defaultSampleFrames = 10

var (
	basedir  string
	game     string
	wadName  string
	mapName  string
	jsonOut  bool
	view     bool
	listMaps bool
	listVars bool
	sample   = boolInt{false, defaultSampleFrames}
	sets     stringList
)

type boolInt struct {
	set bool
	num int
}

func (b *boolInt) IsBoolFlag() bool {
	// We can not support both "-flag" and "-flag 10"
	// This allows "-flag", and "-flag=10"
	// and also "-flag=true" and "-flag=false"
	// but not "-flag 10"
	return true
}

func (b *boolInt) Set(s string) error {
	v, err := strconv.ParseInt(s, 0, strconv.IntSize)
	if err != nil {
		v, err := strconv.ParseBool(s)
		b.set = v
		return err
	}
	b.set = true
	b.num = int(v)
	return nil
}

func (b *boolInt) String() string {
	return fmt.Sprintf("Set: %v, Num: %v", b.set, b.num)
}

type stringList []string

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func init() {
	flag.StringVar(&basedir, "basedir", "", "directory containing the wad files")
	flag.StringVar(&game, "game", "", "additional directory searched before basedir")
	flag.StringVar(&wadName, "wad", "doom1.wad", "wad file to read")
	flag.StringVar(&mapName, "map", "", "map to inspect, default is the first map of the wad")

	flag.BoolVar(&jsonOut, "json", false, "print the sector lights as json")
	flag.BoolVar(&view, "view", false, "show the animated sectors in the terminal")
	flag.BoolVar(&listMaps, "maps", false, "list the maps of the wad")
	flag.BoolVar(&listVars, "cvars", false, "list the cvars after applying -set and exit")

	flag.Var(&sample, "sample", "print sampled brightness of animated sectors, optional number of frames")
	flag.Var(&sets, "set", "set a cvar, name=value, may be repeated")
}

func BaseDirectory() string {
	return basedir
}

func Game() string {
	return game
}

func Wad() string {
	return wadName
}

func Map() string {
	return mapName
}

func JSON() bool {
	return jsonOut
}

func View() bool {
	return view
}

func ListMaps() bool {
	return listMaps
}

func Sample() bool {
	return sample.set
}

func SampleFrames() int {
	if sample.num <= 0 {
		return defaultSampleFrames
	}
	return sample.num
}

// Sets returns the -set assignments in command line order.
func Sets() []string {
	return sets
}

func Cvars() bool {
	return listVars
}
