// SPDX-License-Identifier: GPL-2.0-or-later

// Package cvar holds the named configuration variables of the tools. A cvar
// keeps its string form and a parsed float. Unknown names set from the
// command line become user defined cvars.
package cvar

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"godoom/conlog"
)

var registry = make(map[string]*Cvar)

type flag uint64

const (
	NONE flag = 0
	// marked with * by List
	ARCHIVE flag = 1
	// changes are printed to the console
	NOTIFY flag = 1 << 1
	// value is fixed at registration
	ROM flag = 1 << 6

	userDefined flag = 1 << 17
)

type CallbackFunc func(cv *Cvar)

type Cvar struct {
	name     string
	def      string
	str      string
	num      float32
	flags    flag
	callback CallbackFunc
}

func (cv *Cvar) has(f flag) bool {
	return cv.flags&f != 0
}

func (cv *Cvar) Archive() bool     { return cv.has(ARCHIVE) }
func (cv *Cvar) Notify() bool      { return cv.has(NOTIFY) }
func (cv *Cvar) UserDefined() bool { return cv.has(userDefined) }
func (cv *Cvar) Name() string      { return cv.name }
func (cv *Cvar) String() string    { return cv.str }
func (cv *Cvar) Value() float32    { return cv.num }
func (cv *Cvar) Bool() bool        { return cv.str != "0" }

// SetCallback registers f to run after every change of cv.
func (cv *Cvar) SetCallback(f CallbackFunc) {
	cv.callback = f
}

// SetByString changes cv unless it is read only. Values that do not parse
// as a number read as 0 from Value.
func (cv *Cvar) SetByString(s string) {
	if cv.has(ROM) {
		return
	}
	cv.assign(s)
}

func (cv *Cvar) assign(s string) {
	cv.str = s
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		f = 0
	}
	cv.num = float32(f)
	if cv.has(NOTIFY) {
		conlog.Printf("\"%s\" changed to \"%s\"\n", cv.name, s)
	}
	if cv.callback != nil {
		cv.callback(cv)
	}
}

func (cv *Cvar) SetValue(v float32) {
	cv.SetByString(strconv.FormatFloat(float64(v), 'f', -1, 32))
}

func (cv *Cvar) Reset() {
	cv.SetByString(cv.def)
}

func Get(name string) (*Cvar, bool) {
	cv, ok := registry[name]
	return cv, ok
}

func Register(name, value string, flags flag) (*Cvar, error) {
	if _, ok := registry[name]; ok {
		return nil, fmt.Errorf("cvar %s already registered", name)
	}
	cv := &Cvar{name: name, def: value, flags: flags}
	cv.str = value
	cv.num = 0
	if f, err := strconv.ParseFloat(value, 32); err == nil {
		cv.num = float32(f)
	}
	registry[name] = cv
	return cv, nil
}

func MustRegister(name, value string, flags flag) *Cvar {
	cv, err := Register(name, value, flags)
	if err != nil {
		log.Panic(err)
	}
	return cv
}

// Execute applies an assignment of the form "name=value" or "name value".
func Execute(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		name, value, ok = strings.Cut(strings.TrimSpace(s), " ")
	}
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fmt.Errorf("set <cvar>=<value>, got %q", s)
	}
	value = strings.TrimSpace(value)
	if cv, ok := Get(name); ok {
		cv.SetByString(value)
		return nil
	}
	cv, err := Register(name, value, userDefined)
	if err != nil {
		return err
	}
	log.Printf("created user cvar %s", cv.Name())
	return nil
}

// List prints all cvars sorted by name. Archived cvars are marked with
// '*', notifying ones with 's' and user defined ones with 'u'.
func List() {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	mark := func(set bool, c byte) byte {
		if set {
			return c
		}
		return ' '
	}
	for _, n := range names {
		cv := registry[n]
		conlog.SafePrintf("%c%c%c %s \"%s\"\n",
			mark(cv.Archive(), '*'), mark(cv.Notify(), 's'), mark(cv.UserDefined(), 'u'),
			cv.Name(), cv.String())
	}
	conlog.SafePrintf("%d cvars\n", len(names))
}
