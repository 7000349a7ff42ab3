package schema

import (
	"fmt"
	"strings"
)

// Error reports required columns absent after header-alias translation.
// It is fatal to the whole load/upload/edit call; per-cell problems
// never produce an Error, they coerce to defaults instead.
type Error struct {
	MissingColumns []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("workbook is missing required columns: %s", strings.Join(e.MissingColumns, ", "))
}

// IsSchemaError reports whether err is a schema Error.
func IsSchemaError(err error) bool {
	_, ok := err.(*Error)
	return ok
}
