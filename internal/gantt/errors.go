package gantt

import "errors"

// Domain-specific errors for the gantt package.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrRowIndex        = errors.New("row index out of range")
	ErrEmptyGroup      = errors.New("legend group key is empty")
	ErrEmptyUpload     = errors.New("uploaded file is empty")
)
