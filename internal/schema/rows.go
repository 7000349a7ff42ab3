package schema

import (
	"strconv"
	"time"

	"gantt-task-board/internal/model"
)

// rowDateTimeLayout keeps time-of-day and zone when a task is rendered
// back to a raw row, so re-normalizing an already-normalized table is
// lossless.
const rowDateTimeLayout = time.RFC3339

// RowFromTask renders a canonical task back into raw-row form.
func RowFromTask(t model.Task) model.RawRow {
	return model.RawRow{
		model.ColName:     t.Name,
		model.ColID:       t.ID,
		model.ColStart:    formatRowDate(t.Start),
		model.ColEnd:      formatRowDate(t.End),
		model.ColProgress: strconv.FormatFloat(t.Progress, 'f', -1, 64),
		model.ColParent:   t.ParentID,
		model.ColCategory: t.Category,
		model.ColStatus:   string(t.Status),
	}
}

// RowsFromTasks renders a canonical table back into raw-row form.
func RowsFromTasks(tasks []model.Task) []model.RawRow {
	rows := make([]model.RawRow, len(tasks))
	for i, t := range tasks {
		rows[i] = RowFromTask(t)
	}
	return rows
}

func formatRowDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(rowDateTimeLayout)
}
