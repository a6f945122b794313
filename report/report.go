// SPDX-License-Identifier: GPL-2.0-or-later

// Package report prints the classified lights of a level.
package report

import (
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"godoom/conlog"
	"godoom/level"
	"godoom/light"
	"godoom/lightanim"
)

// SampleStep is the time between two printed samples in seconds.
const SampleStep = 0.1

func effectValue(e *light.Effect) any {
	if e == nil {
		return nil
	}
	return map[string]any{
		"kind":     e.Kind.String(),
		"altLevel": float64(e.AltLevel),
		"speed":    float64(e.Speed),
		"duration": float64(e.Duration),
		"sync":     float64(e.Sync),
	}
}

// Build converts the lights of lv into a generic struct. infos must come
// from lv.Lights(c).
func Build(lv *level.Level, infos []light.Info, c light.Contrast) (*structpb.Struct, error) {
	if len(infos) != len(lv.Sectors) {
		return nil, fmt.Errorf("report: %d lights for %d sectors", len(infos), len(lv.Sectors))
	}
	sectors := make([]any, len(infos))
	for i, in := range infos {
		sectors[i] = map[string]any{
			"id":       lv.SectorID(i),
			"type":     int(lv.Sectors[i].Type),
			"light":    int(lv.SectorLevel(i)),
			"minLight": int(lv.SectorMinLight(i)),
			"level":    float64(in.Level),
			"effect":   effectValue(in.Effect),
		}
	}
	return structpb.NewStruct(map[string]any{
		"map":      lv.Name,
		"contrast": c.String(),
		"animated": len(level.Animated(infos)),
		"sectors":  sectors,
	})
}

// WriteJSON writes s as indented json.
func WriteJSON(w io.Writer, s *structpb.Struct) error {
	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// PrintTable prints one line per animated sector.
func PrintTable(lv *level.Level, infos []light.Info) {
	idx := level.Animated(infos)
	conlog.Printf("%s: %d sectors, %d animated\n", lv.Name, len(infos), len(idx))
	conlog.Printf("%6s %5s %5s %6s %6s %-9s %6s %5s %9s\n",
		"sector", "type", "light", "level", "alt", "kind", "speed", "dur", "sync")
	for _, i := range idx {
		in := infos[i]
		e := in.Effect
		conlog.Printf("%6d %5d %5d %6.3f %6.3f %-9s %6.2f %5.2f %9.3f\n",
			i, lv.Sectors[i].Type, lv.SectorLevel(i),
			in.Level, e.AltLevel, e.Kind, e.Speed, e.Duration, e.Sync)
	}
}

// PrintSamples prints the brightness of every animated sector for frames
// steps of SampleStep seconds.
func PrintSamples(infos []light.Info, frames int, m lightanim.Mode) {
	idx := level.Animated(infos)
	conlog.Printf("%6s", "time")
	for _, i := range idx {
		conlog.Printf(" %6d", i)
	}
	conlog.Printf("\n")
	for f := 0; f < frames; f++ {
		t := float64(f) * SampleStep
		conlog.Printf("%6.2f", t)
		for _, i := range idx {
			conlog.Printf(" %6.3f", lightanim.Evaluate(infos[i], t, m))
		}
		conlog.Printf("\n")
	}
}
