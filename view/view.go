// SPDX-License-Identifier: GPL-2.0-or-later

// Package view shows the animated sectors of a level in the terminal.
package view

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"godoom/cvars"
	"godoom/gametime"
	"godoom/level"
	"godoom/light"
	"godoom/lightanim"
)

const (
	labelWidth = 28
	frameTime  = 16 * time.Millisecond
)

// screen is the part of tcell.Screen the viewer draws to.
type screen interface {
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
	Size() (int, int)
}

type viewer struct {
	screen screen
	lv     *level.Level
	infos  []light.Info
	rows   []int
	clock  *gametime.GameTime
}

func newViewer(s screen, lv *level.Level, infos []light.Info) *viewer {
	return &viewer{
		screen: s,
		lv:     lv,
		infos:  infos,
		rows:   level.Animated(infos),
		clock:  gametime.New(),
	}
}

// Shade maps a brightness in [0,1] to a gray value.
func Shade(v float32) int32 {
	s := int32(v*255 + 0.5)
	return max(0, min(255, s))
}

func (v *viewer) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (v *viewer) draw(t float64) {
	v.screen.Clear()
	w, h := v.screen.Size()
	mode := cvars.LightMode()
	state := "[space] pause"
	if v.clock.Paused() {
		state = "[space] resume"
	}
	title := fmt.Sprintf("%s  t=%7.2fs  frame %d (%3.0fms)  %d animated sectors  %s  [q] quit",
		v.lv.Name, t, v.clock.FrameCount(), v.clock.FrameTime()*1000, len(v.rows), state)
	v.drawText(0, 0, title, tcell.StyleDefault.Bold(true))
	for n, i := range v.rows {
		y := n + 2
		if y >= h {
			break
		}
		in := v.infos[i]
		label := fmt.Sprintf("%5d %-9s %5.2f", i, in.Effect.Kind, in.Effect.Speed)
		v.drawText(0, y, label, tcell.StyleDefault)
		g := Shade(lightanim.Evaluate(in, t, mode))
		style := tcell.StyleDefault.Background(tcell.NewRGBColor(g, g, g))
		for x := labelWidth; x < w; x++ {
			v.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	v.screen.Show()
}

// handle returns false if the viewer should quit.
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				v.clock.TogglePause()
			}
		}
	case *tcell.EventResize:
		if s, ok := v.screen.(tcell.Screen); ok {
			s.Sync()
		}
	}
	return true
}

// Run shows the animated sectors of lv until the user quits.
func Run(lv *level.Level, infos []light.Info) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	v := newViewer(s, lv, infos)
	slog.Debug("Starting viewer", slog.String("map", lv.Name), slog.Int("rows", len(v.rows)))

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()
	for {
		select {
		case ev := <-events:
			if !v.handle(ev) {
				return nil
			}
		case <-ticker.C:
			if v.clock.UpdateTime() {
				v.draw(v.clock.Time())
			}
		}
	}
}
