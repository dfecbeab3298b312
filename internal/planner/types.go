package planner

// RenameOp is one planned rename of a single path component. Two ops denote
// the same operation iff their SourcePath values are equal; Depth exists
// only to order processing (deepest first) and is not part of identity.
type RenameOp struct {
	SourcePath string
	Depth      int
}

// Plan is a deduplicated, depth-descending sequence of rename operations.
// It is built once by [BuildPlan] and consumed once by the pipeline.
type Plan struct {
	Ops []RenameOp
}
