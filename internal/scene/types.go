package scene

import "time"

// Legend-group key prefixes. A group key is the unit of show/hide
// toggling: hiding one key hides every artifact tagged with it.
const (
	GroupCategoryPrefix = "cat:"
	GroupStatusReview   = "status:Review"
	GroupStatusDone     = "status:Done"
)

// Scene is the render-ready chart description consumed by the renderer.
// Artifacts tagged with hidden groups stay in the scene with
// Visible=false so re-toggling needs no rebuild on the renderer side.
type Scene struct {
	Bars       []Bar         `json:"bars"`
	Overlays   []Bar         `json:"overlays"`
	Locks      []Marker      `json:"locks"`
	Connectors []Connector   `json:"connectors"`
	Bands      []Band        `json:"bands"`
	Legend     []LegendEntry `json:"legend"`
	Now        *Marker       `json:"now,omitempty"`
	Height     int           `json:"height"`
	XRange     *Range        `json:"x_range,omitempty"`
}

// Range is the forced x-axis window.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Bar is a horizontal bar: base task bar or progress overlay.
type Bar struct {
	TaskID          string    `json:"task_id"`
	Label           string    `json:"label"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	Color           string    `json:"color"`
	Opacity         float64   `json:"opacity"`
	Group           string    `json:"group"`
	DependsOnGroups []string  `json:"depends_on_groups"`
	Visible         bool      `json:"visible"`
	Hover           string    `json:"hover,omitempty"`
}

// Marker is a point artifact: a lock icon at a bar start, or the
// now line when At is within the visible range.
type Marker struct {
	TaskID          string    `json:"task_id,omitempty"`
	Label           string    `json:"label"`
	At              time.Time `json:"at"`
	Group           string    `json:"group,omitempty"`
	DependsOnGroups []string  `json:"depends_on_groups,omitempty"`
	Visible         bool      `json:"visible"`
	Hover           string    `json:"hover,omitempty"`
}

// Connector is a directed dependency line from the parent bar's end to
// the child bar's start. It hides when either endpoint group hides.
type Connector struct {
	ParentID        string    `json:"parent_id"`
	ChildID         string    `json:"child_id"`
	FromLabel       string    `json:"from_label"`
	ToLabel         string    `json:"to_label"`
	From            time.Time `json:"from"`
	To              time.Time `json:"to"`
	DependsOnGroups []string  `json:"depends_on_groups"`
	Visible         bool      `json:"visible"`
}

// Band is a background shading rectangle for one weekend day.
type Band struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Color string    `json:"color"`
}

// LegendEntry is one clickable legend item. MarkerOnly entries (the
// fixed Review/Done toggles) render as a captionless marker and exist
// even with zero matching tasks.
type LegendEntry struct {
	Key        string `json:"key"`
	Label      string `json:"label"`
	Color      string `json:"color"`
	MarkerOnly bool   `json:"marker_only"`
	Hidden     bool   `json:"hidden"`
}
