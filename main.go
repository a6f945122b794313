// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"godoom/commandline"
	"godoom/conlog"
	"godoom/cvar"
	"godoom/cvars"
	"godoom/filesystem"
	"godoom/level"
	"godoom/report"
	"godoom/view"
	"godoom/wad"
)

func run() error {
	for _, s := range commandline.Sets() {
		if err := cvar.Execute(s); err != nil {
			return err
		}
	}
	if commandline.Cvars() {
		cvar.List()
		return nil
	}

	filesystem.UseBaseDir(commandline.BaseDirectory())
	if g := commandline.Game(); g != "" {
		filesystem.AddGameDir(g)
	}
	if !filesystem.IsWad(commandline.Wad()) {
		slog.Warn("Wad name without .wad extension", slog.String("wad", commandline.Wad()))
	}

	w, err := wad.Load(commandline.Wad())
	if err != nil {
		return err
	}
	slog.Info("Loaded wad",
		slog.String("wad", w.String()),
		slog.String("basedir", filesystem.BaseDir()),
		slog.Bool("iwad", w.IWAD()),
		slog.Int("lumps", w.LumpCount()))
	if commandline.ListMaps() {
		for _, m := range w.Maps() {
			conlog.Printf("%s\n", m)
		}
		return nil
	}

	mapName := commandline.Map()
	if mapName == "" {
		maps := w.Maps()
		if len(maps) == 0 {
			return errors.Errorf("%s contains no maps", w)
		}
		mapName = maps[0]
	}
	lv, err := level.Load(w, mapName)
	if err != nil {
		return err
	}

	contrast := cvars.LightContrast()
	infos := lv.Lights(contrast)

	switch {
	case commandline.View():
		return view.Run(lv, infos)
	case commandline.JSON():
		s, err := report.Build(lv, infos, contrast)
		if err != nil {
			return err
		}
		return report.WriteJSON(os.Stdout, s)
	case commandline.Sample():
		report.PrintSamples(infos, commandline.SampleFrames(), cvars.LightMode())
	default:
		report.PrintTable(lv, infos)
	}
	return nil
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		slog.Error("godoom", slog.Any("error", err))
		os.Exit(1)
	}
}
