package http

import (
	"gantt-task-board/internal/gantt"
	"gantt-task-board/internal/model"
	"gantt-task-board/internal/scene"
	"gantt-task-board/pkg/response"
)

// --- Request DTOs ---

type replaceRowsReq struct {
	Rows []map[string]string `json:"rows" binding:"required"`
}

func (r replaceRowsReq) toInput() gantt.ReplaceRowsInput {
	rows := make([]model.RawRow, len(r.Rows))
	for i, raw := range r.Rows {
		rows[i] = model.RawRow(raw)
	}
	return gantt.ReplaceRowsInput{Rows: rows}
}

// ---

type toggleLegendReq struct {
	Group string `json:"group" binding:"required"`
}

func (r toggleLegendReq) toInput() gantt.ToggleLegendInput {
	return gantt.ToggleLegendInput{Group: r.Group}
}

// --- Response DTOs ---

// taskResp renders one canonical table row. Dates go out as
// YYYY-MM-DD; an unparseable source cell comes back empty.
type taskResp struct {
	Name     string  `json:"name"`
	ID       string  `json:"id"`
	Start    string  `json:"start"`
	End      string  `json:"end"`
	Progress float64 `json:"progress"`
	ParentID string  `json:"parent_id"`
	Category string  `json:"category"`
	Status   string  `json:"status"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		Name:     t.Name,
		ID:       t.ID,
		Progress: t.Progress,
		ParentID: t.ParentID,
		Category: t.Category,
		Status:   string(t.Status),
	}
	if t.Start != nil {
		resp.Start = t.Start.Format(response.DateFormat)
	}
	if t.End != nil {
		resp.End = t.End.Format(response.DateFormat)
	}
	return resp
}

type tableResp struct {
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newTableResp(out gantt.TableOutput) tableResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return tableResp{Tasks: tasks}
}

type sessionResp struct {
	SessionID string    `json:"session_id"`
	Table     tableResp `json:"table"`
}

func (h *handler) newSessionResp(out gantt.SessionOutput) sessionResp {
	return sessionResp{
		SessionID: out.SessionID,
		Table:     h.newTableResp(out.Table),
	}
}

type sceneResp struct {
	Scene scene.Scene `json:"scene"`
}

func (h *handler) newSceneResp(out gantt.SceneOutput) sceneResp {
	return sceneResp{Scene: out.Scene}
}

type exportResp struct {
	FileName string `json:"file_name"`
	Path     string `json:"path"`
}

func (h *handler) newExportResp(out gantt.ExportOutput) exportResp {
	return exportResp{
		FileName: out.FileName,
		Path:     out.Path,
	}
}

type toggleLegendResp struct {
	Group        string   `json:"group"`
	Hidden       bool     `json:"hidden"`
	HiddenGroups []string `json:"hidden_groups"`
}

func (h *handler) newToggleLegendResp(out gantt.ToggleLegendOutput) toggleLegendResp {
	return toggleLegendResp{
		Group:        out.Group,
		Hidden:       out.Hidden,
		HiddenGroups: out.HiddenGroups,
	}
}
