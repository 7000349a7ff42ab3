package dependency

import "gantt-task-board/internal/model"

// Edge is a parent→child dependency derived from the table. Edges are
// never stored; they are recomputed from the whole table on rebuild.
type Edge struct {
	ParentID string
	ChildID  string
}

// Result holds the derived dependency state for one canonical table.
type Result struct {
	// Blocked maps task id to its blocked flag. A task is blocked when
	// its parent id does not resolve, or the resolved parent's progress
	// is below 100.
	Blocked map[string]bool
	// Edges lists every (parent, child) pair whose parent id resolves
	// to an existing task, in table order.
	Edges []Edge
}

// Resolve computes blocked flags and the dependency edge set in O(n).
//
// Duplicate ids resolve last-wins in the id→progress lookup; each
// duplicate child row still yields its own edge. Self-referential rows
// (id == parent id) pass through deliberately: the row blocks on its
// own progress and produces an (id, id) edge. Resolve never fails.
func Resolve(tasks []model.Task) Result {
	progressByID := make(map[string]float64, len(tasks))
	for _, t := range tasks {
		if t.ID != "" {
			progressByID[t.ID] = t.Progress
		}
	}

	blocked := make(map[string]bool, len(tasks))
	var edges []Edge
	for _, t := range tasks {
		blocked[t.ID] = isBlocked(t, progressByID)

		if t.ParentID == "" {
			continue
		}
		if _, ok := progressByID[t.ParentID]; ok {
			edges = append(edges, Edge{ParentID: t.ParentID, ChildID: t.ID})
		}
	}

	return Result{Blocked: blocked, Edges: edges}
}

func isBlocked(t model.Task, progressByID map[string]float64) bool {
	if t.ParentID == "" {
		return false
	}
	parentProgress, ok := progressByID[t.ParentID]
	if !ok {
		return true
	}
	return parentProgress < 100
}
