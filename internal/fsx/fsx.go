// Package fsx is the thin filesystem capability consumed by the planner and
// pipeline. The [OS] implementation backs it with the real filesystem; tests
// may substitute a fake to exercise policy without touching disk.
package fsx

import (
	"os"
	"path/filepath"
	"strings"
)

// FS is the set of filesystem primitives the rename engine needs.
type FS interface {
	// Exists reports whether path denotes an entry (without following a
	// trailing symlink, so dangling links are still renameable).
	Exists(path string) bool
	// IsDir reports whether path denotes a directory.
	IsDir(path string) bool
	// ListChildren returns the immediate children of a directory, each as a
	// full path under it.
	ListChildren(path string) ([]string, error)
	// Equivalent reports whether a and b denote the same underlying entry
	// (e.g. case-insensitive aliasing).
	Equivalent(a, b string) bool
	// Rename moves from to to, overwriting an existing target where the
	// platform allows it.
	Rename(from, to string) error
}

// OS implements [FS] on the real filesystem.
type OS struct{}

func (OS) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func (OS) IsDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

func (OS) ListChildren(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	children := make([]string, 0, len(entries))
	for _, e := range entries {
		children = append(children, Join(path, e.Name()))
	}
	return children, nil
}

func (OS) Equivalent(a, b string) bool {
	fa, err := os.Stat(a)
	if err != nil {
		return false
	}
	fb, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(fa, fb)
}

func (OS) Rename(from, to string) error {
	return os.Rename(from, to)
}

// Join appends name to dir with exactly one separator. Unlike
// [filepath.Join] it never cleans dir, so "." and ".." segments the caller
// supplied survive intact.
func Join(dir, name string) string {
	sep := string(filepath.Separator)
	if dir == "" {
		return name
	}
	if strings.HasSuffix(dir, sep) {
		return dir + name
	}
	return dir + sep + name
}
