package repository

import (
	"context"
	"io"

	"gantt-task-board/internal/model"
)

// WorkbookRepository is the interface for spreadsheet I/O. Load
// returns undecoded rows keyed by the sheet's own headers; alias
// translation and validation happen in the normalizer.
type WorkbookRepository interface {
	Load(ctx context.Context, path string) ([]model.RawRow, error)
	LoadReader(ctx context.Context, r io.Reader) ([]model.RawRow, error)
	Save(ctx context.Context, path string, tasks []model.Task) error
}
