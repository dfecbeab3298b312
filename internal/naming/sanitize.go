package naming

import "strings"

// shellDangerous lists the characters replaced by [SanitizeForShell]:
// shell metacharacters plus newline and carriage return.
const shellDangerous = ";$`|&><'\"\\*?[]()!~#\n\r"

// placeholder substitutes each dangerous character one-to-one.
const placeholder = '_'

// SanitizeForShell replaces every shell-unsafe character in s with an
// underscore. The replacement is one-to-one, so the length of an
// ASCII input is preserved.
func SanitizeForShell(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(shellDangerous, r) {
			return placeholder
		}
		return r
	}, s)
}
