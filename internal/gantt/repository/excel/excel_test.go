package excel_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gantt-task-board/internal/gantt/repository"
	"gantt-task-board/internal/gantt/repository/excel"
	"gantt-task-board/internal/model"
	"gantt-task-board/internal/schema"
)

type mockLogger struct{}

func (mockLogger) Debug(_ context.Context, _ ...any)            {}
func (mockLogger) Debugf(_ context.Context, _ string, _ ...any) {}
func (mockLogger) Info(_ context.Context, _ ...any)             {}
func (mockLogger) Infof(_ context.Context, _ string, _ ...any)  {}
func (mockLogger) Warn(_ context.Context, _ ...any)             {}
func (mockLogger) Warnf(_ context.Context, _ string, _ ...any)  {}
func (mockLogger) Error(_ context.Context, _ ...any)            {}
func (mockLogger) Errorf(_ context.Context, _ string, _ ...any) {}

func datePtr(y int, m time.Month, d, hour int) *time.Time {
	t := time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
	return &t
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := excel.New(mockLogger{}, "")
	path := filepath.Join(t.TempDir(), "board.xlsx")

	in := []model.Task{
		{
			Name: "Design", ID: "T1", Category: "Alpha", Status: model.StatusInProgress,
			Progress: 42.5, ParentID: "",
			Start: datePtr(2024, 5, 1, 9), End: datePtr(2024, 5, 3, 18),
		},
		{
			Name: "Build", ID: "T2", Category: "Beta", Status: model.StatusToDo,
			Progress: 0, ParentID: "T1",
			Start: datePtr(2024, 5, 4, 0), End: datePtr(2024, 5, 8, 0),
		},
	}

	if err := repo.Save(ctx, path, in); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	rows, err := repo.Load(ctx, path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	out, err := schema.Normalize(rows)
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("row count changed: %d -> %d", len(in), len(out))
	}

	byID := make(map[string]model.Task)
	for _, task := range out {
		byID[task.ID] = task
	}
	for _, want := range in {
		got, ok := byID[want.ID]
		if !ok {
			t.Fatalf("task %s lost in round trip", want.ID)
		}
		if got.Name != want.Name || got.Category != want.Category ||
			got.Status != want.Status || got.Progress != want.Progress ||
			got.ParentID != want.ParentID {
			t.Errorf("task %s fields changed: got %+v want %+v", want.ID, got, want)
		}
		// Dates survive to day precision; time-of-day is truncated on export.
		if got.Start == nil || !got.Start.Truncate(24*time.Hour).Equal(want.Start.Truncate(24*time.Hour)) {
			t.Errorf("task %s start changed: got %v want %v", want.ID, got.Start, want.Start)
		}
		if got.End == nil || !got.End.Truncate(24*time.Hour).Equal(want.End.Truncate(24*time.Hour)) {
			t.Errorf("task %s end changed: got %v want %v", want.ID, got.End, want.End)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	repo := excel.New(mockLogger{}, "")
	_, err := repo.Load(context.Background(), filepath.Join(t.TempDir(), "absent.xlsx"))
	if !errors.Is(err, repository.ErrOpenWorkbook) {
		t.Errorf("expected ErrOpenWorkbook, got %v", err)
	}
}

func TestLoadReader(t *testing.T) {
	ctx := context.Background()
	repo := excel.New(mockLogger{}, "")
	path := filepath.Join(t.TempDir(), "board.xlsx")

	in := []model.Task{{
		Name: "A", ID: "T1", Category: "Alpha", Status: model.StatusToDo,
		Start: datePtr(2024, 5, 1, 0), End: datePtr(2024, 5, 2, 0),
	}}
	if err := repo.Save(ctx, path, in); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer f.Close()

	rows, err := repo.LoadReader(ctx, f)
	if err != nil {
		t.Fatalf("load reader failed: %v", err)
	}
	if len(rows) != 1 || rows[0][model.ColID] != "T1" {
		t.Errorf("unexpected rows: %+v", rows)
	}
}
