package usecase_test

import (
	"context"
	"errors"
	"io"

	"gantt-task-board/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}

// mockRepo is a hand-rolled WorkbookRepository double.
type mockRepo struct {
	loadFunc       func(path string) ([]model.RawRow, error)
	loadReaderFunc func(r io.Reader) ([]model.RawRow, error)

	savedPath  string
	savedTasks []model.Task
	saveErr    error
}

func (m *mockRepo) Load(_ context.Context, path string) ([]model.RawRow, error) {
	if m.loadFunc == nil {
		return nil, errors.New("loadFunc not set")
	}
	return m.loadFunc(path)
}

func (m *mockRepo) LoadReader(_ context.Context, r io.Reader) ([]model.RawRow, error) {
	if m.loadReaderFunc == nil {
		return nil, errors.New("loadReaderFunc not set")
	}
	return m.loadReaderFunc(r)
}

func (m *mockRepo) Save(_ context.Context, path string, tasks []model.Task) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.savedPath = path
	m.savedTasks = tasks
	return nil
}

// sourceRow builds a raw row in workbook shape.
func sourceRow(id, name, start, end, progress, parent, category, status string) model.RawRow {
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

// boardRows is the default fixture: X at 50%, Y depends on X.
func boardRows() []model.RawRow {
	return []model.RawRow{
		sourceRow("X", "Design", "2024-05-01", "2024-05-03", "50", "", "Alpha", "In progress"),
		sourceRow("Y", "Build", "2024-05-04", "2024-05-08", "0", "X", "Beta", "To Do"),
	}
}
