package pipeline

// RunStats tracks aggregate counters across one run. Skipped doubles as the
// process exit code, so zero means every attempted operation succeeded.
type RunStats struct {
	Renamed int // Renames performed (or simulated in no-op mode).
	Skipped int // Operations skipped due to an error or collision.
}

// Total returns the number of operations that were attempted.
func (s RunStats) Total() int {
	return s.Renamed + s.Skipped
}
