// Package planner expands input paths into rename candidates and builds the
// ordered, deduplicated plan the pipeline executes.
//
// Implemented:
//   - RenameOp, Plan (types.go)
//   - RenameableComponents: ancestor-inclusive candidate expansion with
//     structural-segment skipping (expand.go)
//   - BuildPlan: worklist traversal with recursive directory expansion,
//     depth-descending sort, and first-seen dedup (planner.go)
//
// Candidates are ordered deepest first so that no rename invalidates the
// recorded path of a later, shallower operation; ancestor renames that have
// already been applied are resolved at execution time by the pipeline's
// tracker, not by re-deriving paths here.
package planner
