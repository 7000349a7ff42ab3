package schema_test

import (
	"errors"
	"testing"
	"time"

	"gantt-task-board/internal/model"
	"gantt-task-board/internal/schema"
)

func row(id, name, start, end, progress, parent, category, status string) model.RawRow {
	return model.RawRow{
		model.ColName:     name,
		model.ColID:       id,
		model.ColStart:    start,
		model.ColEnd:      end,
		model.ColProgress: progress,
		model.ColParent:   parent,
		model.ColCategory: category,
		model.ColStatus:   status,
	}
}

func TestNormalize(t *testing.T) {
	t.Run("Missing Required Column", func(t *testing.T) {
		rows := []model.RawRow{
			{model.ColName: "A", model.ColID: "T1"},
		}
		_, err := schema.Normalize(rows)

		var schemaErr *schema.Error
		if !errors.As(err, &schemaErr) {
			t.Fatalf("expected *schema.Error, got %v", err)
		}
		for _, col := range []string{model.ColStart, model.ColEnd, model.ColProgress, model.ColParent, model.ColCategory} {
			found := false
			for _, m := range schemaErr.MissingColumns {
				if m == col {
					found = true
				}
			}
			if !found {
				t.Errorf("expected %q in missing columns, got %v", col, schemaErr.MissingColumns)
			}
		}
	})

	t.Run("Missing Status Column Synthesized", func(t *testing.T) {
		rows := []model.RawRow{
			{
				model.ColName: "A", model.ColID: "T1",
				model.ColStart: "2024-05-01", model.ColEnd: "2024-05-03",
				model.ColProgress: "10", model.ColParent: "", model.ColCategory: "Alpha",
			},
		}
		tasks, err := schema.Normalize(rows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tasks[0].Status != model.StatusToDo {
			t.Errorf("expected synthesized To Do status, got %q", tasks[0].Status)
		}
	})

	t.Run("Header Alias Translation", func(t *testing.T) {
		rows := []model.RawRow{
			{
				"項目名": "設計", "タスク管理ID": "T1",
				"開始日": "2024-05-01", "期限": "2024-05-03",
				"進捗": "40", "親タスク": "", "カテゴリ": "開発", "ステータス": "Review",
			},
		}
		tasks, err := schema.Normalize(rows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := tasks[0]
		if got.Name != "設計" || got.ID != "T1" || got.Category != "開発" {
			t.Errorf("alias translation lost fields: %+v", got)
		}
		if got.Status != model.StatusReview {
			t.Errorf("expected Review status, got %q", got.Status)
		}
	})

	t.Run("Coercions", func(t *testing.T) {
		rows := []model.RawRow{
			row("  T1  ", " A ", "2024-05-01", "2024-05-03", "150", "", "", "Shipped"),
			row("T2", "B", "2024-05-01", "2024-05-03", "-5", "", "Alpha", ""),
			row("T3", "C", "2024-05-01", "2024-05-03", "abc", "", "Alpha", "Done"),
		}
		tasks, err := schema.Normalize(rows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		byID := make(map[string]model.Task)
		for _, task := range tasks {
			byID[task.ID] = task
		}

		if got := byID["T1"]; got.Progress != 100 || got.Status != model.StatusToDo || got.Category != model.DefaultCategory || got.Name != "A" {
			t.Errorf("T1 coercion wrong: %+v", got)
		}
		if got := byID["T2"]; got.Progress != 0 || got.Status != model.StatusToDo {
			t.Errorf("T2 coercion wrong: %+v", got)
		}
		if got := byID["T3"]; got.Progress != 0 || got.Status != model.StatusDone {
			t.Errorf("T3 coercion wrong: %+v", got)
		}
	})

	t.Run("Unparseable Dates Become Nil", func(t *testing.T) {
		rows := []model.RawRow{
			row("T1", "A", "not-a-date", "2024-05-03", "0", "", "Alpha", ""),
			row("T2", "B", "2024-05-01", "", "0", "", "Alpha", ""),
		}
		tasks, err := schema.Normalize(rows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		byID := make(map[string]model.Task)
		for _, task := range tasks {
			byID[task.ID] = task
		}
		if byID["T1"].Start != nil {
			t.Errorf("expected nil start for unparseable date")
		}
		if byID["T2"].End != nil {
			t.Errorf("expected nil end for blank date")
		}
		if byID["T1"].Charted() || byID["T2"].Charted() {
			t.Errorf("rows with nil dates must not be charted")
		}
	})

	t.Run("Inverted Range Passed Through", func(t *testing.T) {
		rows := []model.RawRow{
			row("T1", "A", "2024-05-10", "2024-05-01", "0", "", "Alpha", ""),
		}
		tasks, err := schema.Normalize(rows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tasks[0].Start == nil || tasks[0].End == nil {
			t.Fatalf("inverted range must keep both dates")
		}
		if !tasks[0].End.Before(*tasks[0].Start) {
			t.Errorf("expected end before start to survive normalization")
		}
	})

	t.Run("Sorted By Start Category Name", func(t *testing.T) {
		rows := []model.RawRow{
			row("T3", "C", "2024-05-02", "2024-05-03", "0", "", "Beta", ""),
			row("T4", "D", "bad", "2024-05-03", "0", "", "Alpha", ""),
			row("T2", "B", "2024-05-01", "2024-05-03", "0", "", "Beta", ""),
			row("T1", "A", "2024-05-01", "2024-05-03", "0", "", "Alpha", ""),
		}
		tasks, err := schema.Normalize(rows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		gotIDs := make([]string, len(tasks))
		for i, task := range tasks {
			gotIDs[i] = task.ID
		}
		wantIDs := []string{"T1", "T2", "T3", "T4"}
		for i := range wantIDs {
			if gotIDs[i] != wantIDs[i] {
				t.Fatalf("sort order wrong: got %v want %v", gotIDs, wantIDs)
			}
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		rows := []model.RawRow{
			row("T2", "B", "2024-05-02T09:30:00Z", "2024-05-04", "55.5", "T1", "Beta", "In progress"),
			row("T1", "A", "2024-05-01", "2024-05-03", "150", "", "", "wrong"),
			row("T3", "C", "garbage", "2024-05-03", "x", "Z99", "Alpha", "Done"),
		}
		once, err := schema.Normalize(rows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		twice, err := schema.Normalize(schema.RowsFromTasks(once))
		if err != nil {
			t.Fatalf("unexpected error on renormalize: %v", err)
		}
		if len(once) != len(twice) {
			t.Fatalf("length changed: %d -> %d", len(once), len(twice))
		}
		for i := range once {
			if !tasksEqual(once[i], twice[i]) {
				t.Errorf("row %d changed on renormalize:\n first=%+v\nsecond=%+v", i, once[i], twice[i])
			}
		}
	})
}

func tasksEqual(a, b model.Task) bool {
	if a.Name != b.Name || a.ID != b.ID || a.Progress != b.Progress ||
		a.ParentID != b.ParentID || a.Category != b.Category || a.Status != b.Status {
		return false
	}
	return datesEqual(a.Start, b.Start) && datesEqual(a.End, b.End)
}

func datesEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
