package repository

import "errors"

// I/O errors are fatal to the operation that hit them only; they never
// corrupt a session's in-memory table.
var (
	ErrOpenWorkbook  = errors.New("failed to open workbook")
	ErrReadWorkbook  = errors.New("failed to read workbook rows")
	ErrWriteWorkbook = errors.New("failed to write workbook")
)
