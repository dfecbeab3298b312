package planner

import (
	"sort"

	"github.com/backmassage/asciirename/internal/config"
	"github.com/backmassage/asciirename/internal/fsx"
)

// pathItem is one pending worklist entry. expanded marks a directory whose
// children are already queued, so it is scanned at most once.
type pathItem struct {
	path     string
	expanded bool
}

// BuildPlan expands inputs into a single deduplicated, depth-descending
// [Plan]. Worklist entries that do not exist are returned in missing and
// contribute no candidates; the caller reports them.
//
// Under recursive, a directory first re-enters the queue marked expanded,
// followed by its immediate children, each of which goes through the same
// expansion; the queue is processed to a fixed point.
func BuildPlan(fsys fsx.FS, inputs []string, recursive bool) (Plan, []string) {
	queue := make([]pathItem, 0, len(inputs))
	for _, p := range inputs {
		queue = append(queue, pathItem{path: config.NormalizePathArg(p)})
	}

	var ops []RenameOp
	var missing []string

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if !fsys.Exists(item.path) {
			missing = append(missing, item.path)
			continue
		}

		if recursive && !item.expanded && fsys.IsDir(item.path) {
			item.expanded = true
			children, err := fsys.ListChildren(item.path)
			if err != nil {
				// Unreadable directory: its own components are still
				// candidates even though the subtree is out of reach.
				queue = append([]pathItem{item}, queue...)
				continue
			}
			front := make([]pathItem, 0, len(children)+1)
			front = append(front, item)
			for _, child := range children {
				front = append(front, pathItem{path: child})
			}
			queue = append(front, queue...)
			continue
		}

		components := RenameableComponents(item.path)
		for i, c := range components {
			// The deepest component of this input gets the highest depth.
			ops = append(ops, RenameOp{SourcePath: c, Depth: len(components) - i})
		}
	}

	// Deepest first. The sort is stable so the first-seen entry for a path
	// survives dedup when depths tie.
	sort.SliceStable(ops, func(i, j int) bool { return ops[i].Depth > ops[j].Depth })

	seen := make(map[string]struct{}, len(ops))
	deduped := ops[:0]
	for _, op := range ops {
		if _, dup := seen[op.SourcePath]; dup {
			continue
		}
		seen[op.SourcePath] = struct{}{}
		deduped = append(deduped, op)
	}

	return Plan{Ops: deduped}, missing
}
