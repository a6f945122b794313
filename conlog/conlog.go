// SPDX-License-Identifier: GPL-2.0-or-later

// Package conlog is the console output of the tools. Printf is for regular
// output, SafePrintf for output that must not be interleaved with a running
// screen.
package conlog

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu sync.Mutex
	p  = stdout
	sp = stdout
)

func stdout(format string, v ...interface{}) {
	fmt.Fprintf(os.Stdout, format, v...)
}

func SetPrintf(f func(string, ...interface{})) {
	mu.Lock()
	defer mu.Unlock()
	p = f
}

func SetSafePrintf(f func(string, ...interface{})) {
	mu.Lock()
	defer mu.Unlock()
	sp = f
}

// SetOutput directs both printers to w.
func SetOutput(w io.Writer) {
	f := func(format string, v ...interface{}) {
		fmt.Fprintf(w, format, v...)
	}
	SetPrintf(f)
	SetSafePrintf(f)
}

func Printf(format string, v ...interface{}) {
	mu.Lock()
	f := p
	mu.Unlock()
	f(format, v...)
}

func SafePrintf(format string, v ...interface{}) {
	mu.Lock()
	f := sp
	mu.Unlock()
	f(format, v...)
}
