// Package pipeline executes a rename plan in order. A Tracker records every
// committed (or simulated) rename so later operations resolve against the
// current on-disk names of their ancestors; the executor applies collision,
// overwrite, and no-op policy per operation. Per-operation failures are
// reported and counted but never abort the run.
package pipeline
