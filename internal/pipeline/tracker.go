package pipeline

import (
	"path/filepath"
	"strings"
)

// renamePair records one committed (or simulated) rename.
type renamePair struct {
	from string
	to   string
}

// Tracker holds the rename history for a single run: an append-only sequence
// of (from, to) pairs, owned by the executor that created it. Resolving a
// path rewrites any recorded ancestor prefixes so operations planned before
// an ancestor was renamed still find the entry where it lives now.
type Tracker struct {
	history []renamePair
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Record appends a completed rename. Pairs are never overwritten or removed.
func (t *Tracker) Record(from, to string) {
	t.history = append(t.history, renamePair{from: from, to: to})
}

// Resolve rewrites path through every recorded pair in recording order.
// Resolution is cumulative: a path may be rewritten by several pairs in
// sequence (grandparent renamed, then parent), each test running against the
// value produced so far. Resolve has no side effects.
func (t *Tracker) Resolve(path string) string {
	resolved := path
	for _, pair := range t.history {
		if rest, ok := trimPathPrefix(resolved, pair.from); ok {
			resolved = pair.to + rest
		}
	}
	return resolved
}

// trimPathPrefix reports whether prefix is a component-wise prefix of path,
// and if so returns the remaining suffix including its leading separator.
// Matching respects component boundaries: "/ab" is not a prefix of "/abc".
func trimPathPrefix(path, prefix string) (string, bool) {
	if path == prefix {
		return "", true
	}
	sep := string(filepath.Separator)
	withSep := prefix
	if !strings.HasSuffix(withSep, sep) {
		withSep += sep
	}
	if strings.HasPrefix(path, withSep) {
		return path[len(withSep)-1:], true
	}
	return "", false
}
