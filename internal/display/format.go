// Package display holds small output-formatting helpers shared by the
// pipeline's progress and summary messages.
package display

import "fmt"

// Quote wraps a path in double quotes for progress and error messages, so
// names with spaces or trailing oddities read unambiguously.
func Quote(path string) string {
	return "\"" + path + "\""
}

// Summary formats the end-of-run counters shown in verbose mode.
func Summary(renamed, skipped int) string {
	return fmt.Sprintf("Renamed: %d, Skipped: %d, Total: %d", renamed, skipped, renamed+skipped)
}
