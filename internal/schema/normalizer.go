package schema

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"gantt-task-board/internal/model"
)

// dateLayouts are tried in order when parsing date cells. Cells that
// match none of them normalize to a nil date, which keeps the row in
// the table but off the chart.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
	"2006/1/2",
	"1/2/2006",
	"01-02-06",
	"1/2/06",
}

// Normalize validates and coerces raw rows into the canonical task table.
//
// Header aliases are translated first; a missing Status column is
// synthesized with To Do for every row; any other missing required
// column fails the whole call with *Error. Per-cell coercions are
// silent: strings are trimmed, invalid progress becomes 0 and is
// clamped to [0,100], unparseable dates become nil, unknown statuses
// become To Do. The result is sorted by (start, category, name) with
// undated rows after dated ones. Normalize is idempotent.
func Normalize(rows []model.RawRow) ([]model.Task, error) {
	translated := translateAliases(rows)

	if missing := missingColumns(translated); len(missing) > 0 {
		return nil, &Error{MissingColumns: missing}
	}

	tasks := make([]model.Task, 0, len(translated))
	for _, row := range translated {
		tasks = append(tasks, normalizeRow(row))
	}

	sortTasks(tasks)
	return tasks, nil
}

// translateAliases rewrites alternate header names onto the canonical
// set, 1:1. Canonical keys always win over an alias for the same column.
func translateAliases(rows []model.RawRow) []model.RawRow {
	out := make([]model.RawRow, len(rows))
	for i, row := range rows {
		r := make(model.RawRow, len(row))
		for key, val := range row {
			if canonical, ok := model.HeaderAliases[key]; ok {
				if _, exists := row[canonical]; !exists {
					r[canonical] = val
				}
				continue
			}
			r[key] = val
		}
		out[i] = r
	}
	return out
}

// missingColumns returns required columns absent from every row.
// Status is exempt: it is synthesized when absent.
func missingColumns(rows []model.RawRow) []string {
	if len(rows) == 0 {
		return nil
	}

	present := make(map[string]bool)
	for _, row := range rows {
		for key := range row {
			present[key] = true
		}
	}

	var missing []string
	for _, col := range model.RequiredColumns {
		if col == model.ColStatus {
			continue
		}
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

func normalizeRow(row model.RawRow) model.Task {
	category := strings.TrimSpace(row[model.ColCategory])
	if category == "" {
		category = model.DefaultCategory
	}

	status := model.Status(strings.TrimSpace(row[model.ColStatus]))
	if !model.ValidStatus(status) {
		status = model.StatusToDo
	}

	return model.Task{
		Name:     strings.TrimSpace(row[model.ColName]),
		ID:       strings.TrimSpace(row[model.ColID]),
		Start:    parseDate(row[model.ColStart]),
		End:      parseDate(row[model.ColEnd]),
		Progress: parseProgress(row[model.ColProgress]),
		ParentID: strings.TrimSpace(row[model.ColParent]),
		Category: category,
		Status:   status,
	}
}

func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func parseProgress(s string) float64 {
	p, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// sortTasks orders the canonical table by (start, category, name).
// Undated rows sort after every dated row, then by category and name.
func sortTasks(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		switch {
		case a.Start == nil && b.Start != nil:
			return false
		case a.Start != nil && b.Start == nil:
			return true
		case a.Start != nil && b.Start != nil && !a.Start.Equal(*b.Start):
			return a.Start.Before(*b.Start)
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.Name < b.Name
	})
}
