package gantt

import (
	"io"

	"gantt-task-board/internal/model"
	"gantt-task-board/internal/scene"
)

// TableOutput carries the canonical table after a read or rebuild.
type TableOutput struct {
	Tasks []model.Task
}

// SessionOutput is the result of creating a session.
type SessionOutput struct {
	SessionID string
	Table     TableOutput
}

// ReplaceRowsInput carries a full-table edit from the grid.
type ReplaceRowsInput struct {
	Rows []model.RawRow
}

// UploadInput carries an uploaded workbook.
type UploadInput struct {
	Reader   io.Reader
	FileName string
}

// ExportOutput names the workbook written by Export.
type ExportOutput struct {
	FileName string
	Path     string
}

// SceneOutput carries the derived chart scene.
type SceneOutput struct {
	Scene scene.Scene
}

// ToggleLegendInput names the legend group to toggle.
type ToggleLegendInput struct {
	Group string
}

// ToggleLegendOutput reports the group's new state and the full hidden set.
type ToggleLegendOutput struct {
	Group        string
	Hidden       bool
	HiddenGroups []string
}
