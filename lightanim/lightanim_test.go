// SPDX-License-Identifier: GPL-2.0-or-later

package lightanim

import (
	gmath "math"
	"testing"

	"godoom/light"
)

func info(k light.EffectKind, speed, duration, sync float32) light.Info {
	return light.Info{
		Level: 0.75,
		Effect: &light.Effect{
			AltLevel: 0.25,
			Speed:    speed,
			Duration: duration,
			Sync:     sync,
			Kind:     k,
		},
	}
}

func near(a, b float32) bool {
	return gmath.Abs(float64(a-b)) < 1e-5
}

func TestStatic(t *testing.T) {
	in := light.Info{Level: 0.5}
	for _, ts := range []float64{0, 0.3, 17} {
		if got := Sample(in, ts); got != 0.5 {
			t.Errorf("Sample(static, %v) = %v, want 0.5", ts, got)
		}
	}
	if got := Mean(in); got != 0.5 {
		t.Errorf("Mean(static) = %v", got)
	}
	if got := Max(in); got != 0.5 {
		t.Errorf("Max(static) = %v", got)
	}
}

func TestGlow(t *testing.T) {
	in := info(light.KindGlow, 0.5, 0, 0)
	// speed 0.5 gives a period of 2 seconds
	tests := []struct {
		t    float64
		want float32
	}{
		{0, 0.75},
		{1, 0.25},
		{2, 0.75},
	}
	for _, tc := range tests {
		if got := Sample(in, tc.t); !near(got, tc.want) {
			t.Errorf("Sample(glow, %v) = %v, want %v", tc.t, got, tc.want)
		}
	}
	if got := Sample(in, 0.5); got <= 0.25 || got >= 0.75 {
		t.Errorf("Sample(glow, 0.5) = %v, want between levels", got)
	}
}

func TestAlternate(t *testing.T) {
	in := info(light.KindAlternate, 1, 0.75, 0)
	tests := []struct {
		t    float64
		want float32
	}{
		{0, 0.75},
		{0.5, 0.75},
		{0.875, 0.25},
		{1.25, 0.75},
	}
	for _, tc := range tests {
		if got := Sample(in, tc.t); got != tc.want {
			t.Errorf("Sample(alternate, %v) = %v, want %v", tc.t, got, tc.want)
		}
	}
}

func TestAlternateSync(t *testing.T) {
	a := info(light.KindAlternate, 1, 0.75, 0)
	b := info(light.KindAlternate, 1, 0.75, 0.5)
	// b runs half a period ahead of a
	if got, want := Sample(b, 0.375), Sample(a, 0.875); got != want {
		t.Errorf("Sample(b, 0.375) = %v, want %v", got, want)
	}
}

func TestRandomDeterministic(t *testing.T) {
	in := info(light.KindRandom, 8, 0.5, light.Sync(42))
	alt := 0
	for i := 0; i < 400; i++ {
		ts := float64(i) * 0.05
		got := Sample(in, ts)
		if got != Sample(in, ts) {
			t.Fatalf("Sample(random, %v) not deterministic", ts)
		}
		switch got {
		case 0.25:
			alt++
		case 0.75:
		default:
			t.Fatalf("Sample(random, %v) = %v, not one of the levels", ts, got)
		}
	}
	if alt == 0 || alt == 400 {
		t.Errorf("random effect never changed, %d of 400 samples dark", alt)
	}
}

func TestRandomConstantWithinBucket(t *testing.T) {
	in := info(light.KindRandom, 20, 0.06, 0)
	// speed 20 gives 50ms buckets
	if got, want := Sample(in, 0.101), Sample(in, 0.149); got != want {
		t.Errorf("Sample(0.101) = %v, Sample(0.149) = %v", got, want)
	}
}

func TestRandomDarkFraction(t *testing.T) {
	const buckets = 4000
	for _, duration := range []float32{0.06, 0.5} {
		in := info(light.KindRandom, 10, duration, 0)
		dark := 0
		for k := 0; k < buckets; k++ {
			if Sample(in, (float64(k)+0.5)/10) == 0.25 {
				dark++
			}
		}
		if got := float32(dark) / buckets; gmath.Abs(float64(got-duration)) > 0.03 {
			t.Errorf("duration %v: %v of buckets dark", duration, got)
		}
	}
}

func TestEvaluateModes(t *testing.T) {
	in := info(light.KindAlternate, 1, 0.75, 0)
	if got := Evaluate(in, 0.875, Animate); got != 0.25 {
		t.Errorf("Evaluate(Animate) = %v, want 0.25", got)
	}
	if got := Evaluate(in, 0.875, Average); got != 0.625 {
		t.Errorf("Evaluate(Average) = %v, want 0.625", got)
	}
	if got := Evaluate(in, 0.875, Peak); got != 0.75 {
		t.Errorf("Evaluate(Peak) = %v, want 0.75", got)
	}
}

func TestMean(t *testing.T) {
	tests := []struct {
		in   light.Info
		want float32
	}{
		{info(light.KindGlow, 0.5, 0, 0), 0.5},
		{info(light.KindAlternate, 1, 0.75, 0), 0.625},
		{info(light.KindRandom, 8, 0.5, 0), 0.5},
	}
	for _, tc := range tests {
		if got := Mean(tc.in); got != tc.want {
			t.Errorf("Mean(%v) = %v, want %v", tc.in.Effect.Kind, got, tc.want)
		}
	}
}
