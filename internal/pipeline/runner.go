package pipeline

import (
	"path/filepath"
	"strings"

	"github.com/backmassage/asciirename/internal/config"
	"github.com/backmassage/asciirename/internal/display"
	"github.com/backmassage/asciirename/internal/fsx"
	"github.com/backmassage/asciirename/internal/logging"
	"github.com/backmassage/asciirename/internal/naming"
	"github.com/backmassage/asciirename/internal/planner"
)

// Run is the top-level entry point. It builds the plan for cfg.Paths and
// executes it strictly in order, one operation at a time, consulting and
// updating a fresh Tracker between operations. The returned stats carry the
// skipped count the caller uses as the process exit code.
func Run(cfg *config.Config, log *logging.Logger, fsys fsx.FS) RunStats {
	var stats RunStats

	plan, missing := planner.BuildPlan(fsys, cfg.Paths, cfg.Recursive)
	for _, p := range missing {
		log.Error("%s doesn't exist.", display.Quote(p))
	}
	log.Debug(cfg.Verbose, "Collected %d path components to process.", len(plan.Ops))

	tracker := NewTracker()
	for _, op := range plan.Ops {
		processOp(cfg, log, fsys, tracker, op, &stats)
	}

	if cfg.Verbose {
		log.Info("%s", display.Summary(stats.Renamed, stats.Skipped))
	}
	return stats
}

// processOp applies the full policy for a single planned rename:
// resolve, existence check, transliterate, sanitize, no-op check, collision
// check, then rename (or simulate). All failures are local; they are
// reported and counted, never propagated.
func processOp(
	cfg *config.Config,
	log *logging.Logger,
	fsys fsx.FS,
	tracker *Tracker,
	op planner.RenameOp,
	stats *RunStats,
) {
	current := tracker.Resolve(op.SourcePath)
	log.Debug(cfg.Verbose, "Processing %s...", display.Quote(current))

	// An ancestor may have been deleted or renamed out from under us; that
	// is not an error and not counted.
	if !fsys.Exists(current) {
		log.Debug(cfg.Verbose, "Path no longer exists, skipping %s...", display.Quote(current))
		return
	}

	name := baseName(current)
	ascii, err := naming.Transliterate(name)
	if err != nil {
		log.Error("Unable to convert %s to ASCII, skipping.", display.Quote(name))
		stats.Skipped++
		return
	}
	ascii = naming.SanitizeForShell(ascii)

	newPath := replaceBase(current, ascii)
	if newPath == current {
		log.Debug(cfg.Verbose, "No need to rename %s.", display.Quote(current))
		return
	}

	if fsys.Exists(newPath) && !cfg.Overwrite && !fsys.Equivalent(current, newPath) {
		log.Error("%s already exists.", display.Quote(newPath))
		log.Error("Specify --overwrite to overwrite.")
		stats.Skipped++
		return
	}

	if cfg.NoOp {
		log.Info("Would have renamed %s to %s...", display.Quote(current), display.Quote(newPath))
		stats.Renamed++
		// Recorded even though nothing moved, so the rest of the plan
		// resolves against the names a real run would have produced.
		tracker.Record(current, newPath)
		return
	}

	log.Info("Renaming %s to %s...", display.Quote(current), display.Quote(newPath))
	if err := fsys.Rename(current, newPath); err != nil {
		log.Error("File system error, unable to rename %s to %s.",
			display.Quote(current), display.Quote(newPath))
		stats.Skipped++
		return
	}
	stats.Renamed++
	tracker.Record(current, newPath)
}

// baseName and replaceBase are lexical on purpose: filepath.Base and
// filepath.Dir clean their argument, which would collapse "." and ".."
// segments the planner deliberately preserved.

func baseName(path string) string {
	sep := string(filepath.Separator)
	if i := strings.LastIndex(path, sep); i >= 0 {
		return path[i+1:]
	}
	return path
}

func replaceBase(path, name string) string {
	sep := string(filepath.Separator)
	if i := strings.LastIndex(path, sep); i >= 0 {
		return path[:i+1] + name
	}
	return name
}
