// SPDX-License-Identifier: GPL-2.0-or-later

package rand

import (
	"testing"
)

func TestDeterministic(t *testing.T) {
	a := New(1234)
	b := New(1234)
	for i := uint32(0); i < 100; i++ {
		if x, y := a.Uint32At(i), b.Uint32At(i); x != y {
			t.Errorf("Uint32At(%d) = %v and %v", i, x, y)
		}
	}
}

func TestSeedMatters(t *testing.T) {
	a := New(1)
	b := New(2)
	same := 0
	for i := uint32(0); i < 100; i++ {
		if a.Uint32At(i) == b.Uint32At(i) {
			same++
		}
	}
	if same > 1 {
		t.Errorf("%d of 100 values equal for different seeds", same)
	}
}

func TestFloat32Range(t *testing.T) {
	g := New(99)
	sum := float32(0)
	for i := uint32(0); i < 1000; i++ {
		f := g.Float32At(i)
		if f < 0 || f >= 1 {
			t.Fatalf("Float32At(%d) = %v", i, f)
		}
		sum += f
	}
	if avg := sum / 1000; avg < 0.4 || avg > 0.6 {
		t.Errorf("average = %v, want about 0.5", avg)
	}
}
