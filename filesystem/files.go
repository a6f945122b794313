// SPDX-License-Identifier: GPL-2.0-or-later

// Package filesystem locates wad files. Names are looked up in the added
// game directories, most recent first, then in the base directory.
package filesystem

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
)

var (
	baseDir  string
	gameDirs []string
	mutex    sync.RWMutex
)

type File = io.ReadSeekCloser

func BaseDir() string {
	mutex.RLock()
	defer mutex.RUnlock()
	return baseDir
}

func UseBaseDir(dir string) {
	mutex.Lock()
	defer mutex.Unlock()
	baseDir = dir
	gameDirs = nil
}

// AddGameDir adds dir, relative to the base directory, in front of the
// search order.
func AddGameDir(dir string) {
	mutex.Lock()
	defer mutex.Unlock()
	gameDirs = append(gameDirs, filepath.Join(baseDir, dir))
}

func searchPath() []string {
	mutex.RLock()
	defer mutex.RUnlock()
	sp := make([]string, 0, len(gameDirs)+1)
	for i := len(gameDirs) - 1; i >= 0; i-- {
		sp = append(sp, gameDirs[i])
	}
	if baseDir != "" {
		sp = append(sp, baseDir)
	} else {
		sp = append(sp, ".")
	}
	return sp
}

// Open returns the first file called name on the search path. Absolute
// names are opened directly.
func Open(name string) (File, error) {
	if filepath.IsAbs(name) {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	rel := path.Clean(filepath.ToSlash(name))
	if !fs.ValidPath(rel) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	for _, dir := range searchPath() {
		f, err := os.Open(filepath.Join(dir, filepath.FromSlash(rel)))
		if err == nil {
			return f, nil
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

func ReadFile(name string) ([]byte, error) {
	file, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

func isSep(c uint8) bool {
	return c == '/' || c == '\\'
}

func Ext(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}

// IsWad reports whether name has a wad extension.
func IsWad(name string) bool {
	return strings.EqualFold(Ext(name), ".wad")
}
