package http

import (
	"errors"

	"gantt-task-board/internal/gantt"
	"gantt-task-board/internal/gantt/repository"
	"gantt-task-board/internal/schema"
	pkgErrors "gantt-task-board/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var schemaErr *schema.Error
	switch {
	case errors.Is(err, gantt.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(404, "session not found")
	case errors.Is(err, gantt.ErrRowIndex):
		return pkgErrors.NewHTTPError(400, "row index out of range")
	case errors.Is(err, gantt.ErrEmptyGroup):
		return pkgErrors.NewHTTPError(400, "legend group is required")
	case errors.Is(err, gantt.ErrEmptyUpload):
		return pkgErrors.NewHTTPError(400, "uploaded file is empty")
	case errors.As(err, &schemaErr):
		return pkgErrors.NewHTTPError(400, schemaErr.Error())
	case errors.Is(err, repository.ErrOpenWorkbook), errors.Is(err, repository.ErrReadWorkbook):
		return pkgErrors.NewHTTPError(400, "could not read workbook")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
