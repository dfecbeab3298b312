// Package naming converts filenames to shell-safe ASCII: best-effort
// Unicode transliteration followed by shell-metacharacter sanitization.
package naming

import (
	"errors"
	"strings"
	"unicode/utf8"

	anyascii "github.com/anyascii/go"
)

// ErrNotRepresentable reports that a filename has no non-empty ASCII
// transliteration, so no rename target can be derived from it.
var ErrNotRepresentable = errors.New("no ASCII representation")

// Transliterate returns the best-effort ASCII transliteration of s.
// Invalid UTF-8 bytes are dropped rather than failing the whole call.
// A non-empty input whose transliteration comes out empty returns
// [ErrNotRepresentable]: an empty string is not a usable filename.
func Transliterate(s string) (string, error) {
	in := s
	if !utf8.ValidString(in) {
		in = dropInvalidBytes(in)
	}
	out := anyascii.Transliterate(in)
	if out == "" && s != "" {
		return "", ErrNotRepresentable
	}
	return out, nil
}

// dropInvalidBytes removes bytes that do not form valid UTF-8 sequences,
// keeping every decodable rune.
func dropInvalidBytes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}
