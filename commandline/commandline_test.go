// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"flag"
	"reflect"
	"testing"
)

func TestBoolInt(t *testing.T) {
	var flags flag.FlagSet
	flags.Init("test", flag.ContinueOnError)
	a := boolInt{false, 4}
	b := boolInt{false, 5}
	c := boolInt{true, 6}
	d := boolInt{false, 7}
	e := boolInt{false, 8}
	f := boolInt{true, 9}
	flags.Var(&a, "a", "usage")
	flags.Var(&b, "b", "usage")
	flags.Var(&c, "c", "usage")
	flags.Var(&d, "d", "usage")
	flags.Var(&e, "e", "usage")
	flags.Var(&f, "f", "usage")
	if err := flags.Parse([]string{"-a", "-b=3", "-e=true", "-f=false"}); err != nil {
		t.Error(err)
	}
	if a.set != true {
		t.Errorf("a.set = %v", a.set)
	}
	if b.set != true {
		t.Errorf("b.set = %v", b.set)
	}
	if c.set != true {
		t.Errorf("c.set = %v", c.set)
	}
	if d.set != false {
		t.Errorf("d.set = %v", d.set)
	}
	if e.set != true {
		t.Errorf("e.set = %v", e.set)
	}
	if f.set != false {
		t.Errorf("f.set = %v", f.set)
	}
	if a.num != 4 {
		t.Errorf("a.num = %v", a.num)
	}
	if b.num != 3 {
		t.Errorf("b.num = %v", b.num)
	}
}

func TestStringList(t *testing.T) {
	var flags flag.FlagSet
	flags.Init("test", flag.ContinueOnError)
	var s stringList
	flags.Var(&s, "set", "usage")
	if err := flags.Parse([]string{"-set", "a=1", "-set=b=2"}); err != nil {
		t.Fatal(err)
	}
	if want := (stringList{"a=1", "b=2"}); !reflect.DeepEqual(s, want) {
		t.Errorf("set = %v, want %v", s, want)
	}
	if s.String() != "a=1,b=2" {
		t.Errorf("String() = %q", s.String())
	}
}

func TestSampleFrames(t *testing.T) {
	defer func(old boolInt) { sample = old }(sample)
	sample = boolInt{true, 0}
	if got := SampleFrames(); got != defaultSampleFrames {
		t.Errorf("SampleFrames() = %d, want %d", got, defaultSampleFrames)
	}
	sample = boolInt{true, 25}
	if got := SampleFrames(); got != 25 {
		t.Errorf("SampleFrames() = %d, want 25", got)
	}
}

func TestCvarsFlag(t *testing.T) {
	f := flag.Lookup("cvars")
	if f == nil {
		t.Fatal("no -cvars flag")
	}
	defer f.Value.Set("false")
	if Cvars() {
		t.Errorf("Cvars() = true by default")
	}
	if err := f.Value.Set("true"); err != nil {
		t.Fatal(err)
	}
	if !Cvars() {
		t.Errorf("Cvars() = false after -cvars")
	}
}
