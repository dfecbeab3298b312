package planner

import (
	"path/filepath"
	"strings"
)

// RenameableComponents returns the ancestor-inclusive prefixes of path that
// are candidates for renaming, deepest first. Structural segments extend the
// running prefix but never become candidates themselves: root separators,
// "." and ".." markers, and drive-letter segments like "C:" cannot be
// meaningfully renamed. A bare root or drive path yields an empty list.
//
// Accumulation is purely lexical; "." and ".." segments are preserved, not
// collapsed, so every emitted candidate stays valid relative to the path the
// user actually typed.
func RenameableComponents(path string) []string {
	sep := string(filepath.Separator)
	vol := filepath.VolumeName(path)
	current := vol

	var candidates []string
	for _, seg := range strings.Split(path[len(vol):], sep) {
		if seg == "" {
			// Leading or duplicated separator; only the root one matters.
			if current == vol {
				current += sep
			}
			continue
		}
		structural := seg == "." || seg == ".." || isDriveSegment(seg)
		current = extend(current, seg, sep)
		if !structural {
			candidates = append(candidates, current)
		}
	}

	// Deepest first.
	for i, j := 0, len(candidates)-1; i < j; i, j = i+1, j-1 {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}
	return candidates
}

// extend appends seg to prefix without cleaning.
func extend(prefix, seg, sep string) string {
	if prefix == "" {
		return seg
	}
	if strings.HasSuffix(prefix, sep) {
		return prefix + seg
	}
	return prefix + sep + seg
}

// isDriveSegment reports whether seg is a two-character drive-letter marker
// such as "C:".
func isDriveSegment(seg string) bool {
	if len(seg) != 2 || seg[1] != ':' {
		return false
	}
	c := seg[0]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
