package scene

import (
	"fmt"
	"time"

	"gantt-task-board/internal/dependency"
	"gantt-task-board/internal/model"
)

// Chart sizing: height grows with visible rows but never shrinks below
// the floor; the x-axis gets one extra day so single-day boards still
// render a viewport.
const (
	heightFloor   = 520
	heightPerRow  = 28
	heightPadding = 260
)

// Build derives the render-ready scene from the canonical table, the
// resolver result, and the session's hidden legend groups.
//
// Tasks missing either date are excluded from the scene entirely (they
// stay in the table view). Hidden groups mark artifacts invisible
// without removing them; a connector goes invisible when either
// endpoint's group is hidden, independent of toggle order. The now
// marker appears only when now falls inside the charted date range.
func Build(tasks []model.Task, res dependency.Result, hidden map[string]bool, now time.Time) Scene {
	charted := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Charted() {
			charted = append(charted, t)
		}
	}

	s := Scene{Height: barHeight(len(charted))}
	if len(charted) == 0 {
		s.Legend = statusLegend(hidden)
		return s
	}

	colors := categoryColors(chartedCategories(charted))

	s.Bars = buildBars(charted, res, colors, hidden)
	s.Overlays = buildOverlays(charted, colors, hidden)
	s.Locks = buildLocks(charted, res, hidden)
	s.Connectors = buildConnectors(charted, res, hidden)

	minStart, maxEnd := dateExtent(charted)
	s.Bands = weekendBands(minStart, maxEnd)
	s.XRange = &Range{Start: minStart, End: maxEnd.Add(24 * time.Hour)}

	if !now.Before(minStart) && !now.After(maxEnd) {
		s.Now = &Marker{Label: nowText, At: now, Visible: true}
	}

	s.Legend = append(categoryLegend(charted, colors, hidden), statusLegend(hidden)...)
	return s
}

// legendGroup returns the task's legend-group key. Review and Done
// override category grouping; this precedence is fixed.
func legendGroup(t model.Task) string {
	switch t.Status {
	case model.StatusReview:
		return GroupStatusReview
	case model.StatusDone:
		return GroupStatusDone
	}
	return GroupCategoryPrefix + t.Category
}

// barColor resolves the fill: status grays win over category colors.
func barColor(t model.Task, colors map[string]string) string {
	switch t.Status {
	case model.StatusReview:
		return colorReview
	case model.StatusDone:
		return colorDone
	}
	return colors[t.Category]
}

func buildBars(charted []model.Task, res dependency.Result, colors map[string]string, hidden map[string]bool) []Bar {
	bars := make([]Bar, 0, len(charted))
	for _, t := range charted {
		group := legendGroup(t)
		bars = append(bars, Bar{
			TaskID:          t.ID,
			Label:           t.Name,
			Start:           *t.Start,
			End:             *t.End,
			Color:           barColor(t, colors),
			Opacity:         1,
			Group:           group,
			DependsOnGroups: []string{group},
			Visible:         !hidden[group],
			Hover:           barHover(t, res.Blocked[t.ID]),
		})
	}
	return bars
}

// buildOverlays emits the progress fill for every charted task: same
// legend group as the base bar, never independently toggleable.
func buildOverlays(charted []model.Task, colors map[string]string, hidden map[string]bool) []Bar {
	overlays := make([]Bar, 0, len(charted))
	for _, t := range charted {
		group := legendGroup(t)
		duration := t.End.Sub(*t.Start)
		progressEnd := t.Start.Add(time.Duration(float64(duration) * t.Progress / 100))
		overlays = append(overlays, Bar{
			TaskID:          t.ID,
			Label:           t.Name,
			Start:           *t.Start,
			End:             progressEnd,
			Color:           colorOverlay,
			Opacity:         overlayOpacity,
			Group:           group,
			DependsOnGroups: []string{group},
			Visible:         !hidden[group],
			Hover:           fmt.Sprintf("Progress: %g%%", t.Progress),
		})
	}
	return overlays
}

func buildLocks(charted []model.Task, res dependency.Result, hidden map[string]bool) []Marker {
	var locks []Marker
	for _, t := range charted {
		if !res.Blocked[t.ID] {
			continue
		}
		group := legendGroup(t)
		locks = append(locks, Marker{
			TaskID:          t.ID,
			Label:           lockText,
			At:              *t.Start,
			Group:           group,
			DependsOnGroups: []string{group},
			Visible:         !hidden[group],
			Hover:           lockHover,
		})
	}
	return locks
}

// buildConnectors draws parent end → child start for every resolver
// edge whose endpoints are both charted. Duplicate ids resolve to the
// last charted row, matching the resolver's lookup semantics.
func buildConnectors(charted []model.Task, res dependency.Result, hidden map[string]bool) []Connector {
	byID := make(map[string]model.Task, len(charted))
	for _, t := range charted {
		byID[t.ID] = t
	}

	var connectors []Connector
	for _, e := range res.Edges {
		parent, okParent := byID[e.ParentID]
		child, okChild := byID[e.ChildID]
		if !okParent || !okChild {
			continue
		}
		groups := []string{legendGroup(parent), legendGroup(child)}
		connectors = append(connectors, Connector{
			ParentID:        e.ParentID,
			ChildID:         e.ChildID,
			FromLabel:       parent.Name,
			ToLabel:         child.Name,
			From:            *parent.End,
			To:              *child.Start,
			DependsOnGroups: groups,
			Visible:         !hidden[groups[0]] && !hidden[groups[1]],
		})
	}
	return connectors
}

// weekendBands scans calendar days across the charted range and emits
// one tinted band per Saturday and Sunday. O(days in range).
func weekendBands(minStart, maxEnd time.Time) []Band {
	var bands []Band
	day := truncateDay(minStart)
	last := truncateDay(maxEnd)
	for !day.After(last) {
		switch day.Weekday() {
		case time.Saturday:
			bands = append(bands, Band{Start: day, End: day.Add(24 * time.Hour), Color: colorSaturday})
		case time.Sunday:
			bands = append(bands, Band{Start: day, End: day.Add(24 * time.Hour), Color: colorSunday})
		}
		day = day.Add(24 * time.Hour)
	}
	return bands
}

// categoryLegend emits one toggle per category carrying a charted
// To Do / In progress task, in first-seen table order.
func categoryLegend(charted []model.Task, colors map[string]string, hidden map[string]bool) []LegendEntry {
	var entries []LegendEntry
	for _, cat := range chartedCategories(charted) {
		key := GroupCategoryPrefix + cat
		entries = append(entries, LegendEntry{
			Key:    key,
			Label:  cat,
			Color:  colors[cat],
			Hidden: hidden[key],
		})
	}
	return entries
}

// statusLegend emits the two fixed Review/Done toggles. They exist even
// with zero matching tasks so the toggle is always available.
func statusLegend(hidden map[string]bool) []LegendEntry {
	return []LegendEntry{
		{Key: GroupStatusReview, Label: "Review", Color: colorReview, MarkerOnly: true, Hidden: hidden[GroupStatusReview]},
		{Key: GroupStatusDone, Label: "Done", Color: colorDone, MarkerOnly: true, Hidden: hidden[GroupStatusDone]},
	}
}

// chartedCategories lists categories of charted To Do / In progress
// tasks in first-seen order. Review/Done tasks draw gray and do not
// claim a category color.
func chartedCategories(charted []model.Task) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, t := range charted {
		if t.Status == model.StatusReview || t.Status == model.StatusDone {
			continue
		}
		if !seen[t.Category] {
			seen[t.Category] = true
			categories = append(categories, t.Category)
		}
	}
	return categories
}

func dateExtent(charted []model.Task) (time.Time, time.Time) {
	minStart := *charted[0].Start
	maxEnd := *charted[0].End
	for _, t := range charted[1:] {
		if t.Start.Before(minStart) {
			minStart = *t.Start
		}
		if t.End.After(maxEnd) {
			maxEnd = *t.End
		}
	}
	return minStart, maxEnd
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func barHeight(rows int) int {
	if rows < 1 {
		rows = 1
	}
	h := heightPerRow*rows + heightPadding
	if h < heightFloor {
		return heightFloor
	}
	return h
}

func barHover(t model.Task, blocked bool) string {
	state := "OK"
	if blocked {
		state = "BLOCKED"
	}
	return fmt.Sprintf("%s | %s | %g%% | %s | %s", t.ID, t.Category, t.Progress, t.Status, state)
}
