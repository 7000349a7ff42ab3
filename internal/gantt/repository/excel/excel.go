package excel

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"gantt-task-board/internal/gantt/repository"
	"gantt-task-board/internal/model"
	"gantt-task-board/pkg/log"
)

// exportDateFormat truncates time-of-day on export even when it is
// retained internally.
const exportDateFormat = "2006-01-02"

// Repository reads and writes task workbooks via excelize.
type Repository struct {
	l     log.Logger
	sheet string // sheet to read; "" means first sheet
}

var _ repository.WorkbookRepository = (*Repository)(nil)

// New creates a workbook repository. sheet selects the sheet to read
// on load; leave empty to use the workbook's first sheet.
func New(l log.Logger, sheet string) *Repository {
	return &Repository{l: l, sheet: sheet}
}

// Load reads the workbook at path into raw rows keyed by its headers.
func (r *Repository) Load(ctx context.Context, path string) ([]model.RawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", repository.ErrOpenWorkbook, path, err)
	}
	defer f.Close()

	return r.decode(ctx, f)
}

// LoadReader reads an uploaded workbook stream into raw rows.
func (r *Repository) LoadReader(ctx context.Context, src io.Reader) ([]model.RawRow, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrOpenWorkbook, err)
	}
	defer f.Close()

	return r.decode(ctx, f)
}

func (r *Repository) decode(ctx context.Context, f *excelize.File) ([]model.RawRow, error) {
	sheet := r.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %v", repository.ErrReadWorkbook, sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := rows[0]
	out := make([]model.RawRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := make(model.RawRow, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(cells) {
				row[header] = cells[i]
			} else {
				row[header] = ""
			}
		}
		out = append(out, row)
	}

	r.l.Debugf(ctx, "decoded %d rows from sheet %q", len(out), sheet)
	return out, nil
}

// Save writes the canonical table with the eight canonical columns in
// fixed order. Dates are written as YYYY-MM-DD strings.
func (r *Repository) Save(ctx context.Context, path string, tasks []model.Task) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for col, header := range model.RequiredColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("%w: %v", repository.ErrWriteWorkbook, err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("%w: %v", repository.ErrWriteWorkbook, err)
		}
	}

	for i, t := range tasks {
		values := []any{
			t.Name,
			t.ID,
			formatExportDate(t),
			formatExportEndDate(t),
			t.Progress,
			t.ParentID,
			t.Category,
			string(t.Status),
		}
		for col, val := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("%w: %v", repository.ErrWriteWorkbook, err)
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return fmt.Errorf("%w: %v", repository.ErrWriteWorkbook, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%w: %s: %v", repository.ErrWriteWorkbook, path, err)
	}

	r.l.Infof(ctx, "wrote %d rows to %s", len(tasks), path)
	return nil
}

func formatExportDate(t model.Task) string {
	if t.Start == nil {
		return ""
	}
	return t.Start.Format(exportDateFormat)
}

func formatExportEndDate(t model.Task) string {
	if t.End == nil {
		return ""
	}
	return t.End.Format(exportDateFormat)
}
