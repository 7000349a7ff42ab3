package gantt

import "context"

// UseCase defines the business logic interface for the gantt board
// domain. Every mutation rebuilds the session's canonical table from
// scratch: blocked flags and edges are whole-table properties, so one
// row's edit can change another row's derived state.
type UseCase interface {
	// CreateSession loads the configured workbook into a fresh session.
	CreateSession(ctx context.Context) (SessionOutput, error)

	// Table returns the session's current canonical table.
	Table(ctx context.Context, sessionID string) (TableOutput, error)

	// ReplaceRows replaces the whole table with edited rows. A schema
	// failure leaves the previous table intact.
	ReplaceRows(ctx context.Context, sessionID string, input ReplaceRowsInput) (TableOutput, error)

	// DeleteRow removes one row by canonical table index.
	DeleteRow(ctx context.Context, sessionID string, index int) (TableOutput, error)

	// Reload re-reads the configured source workbook, discarding edits.
	Reload(ctx context.Context, sessionID string) (TableOutput, error)

	// Upload replaces the table from an uploaded workbook, independent
	// of the configured source.
	Upload(ctx context.Context, sessionID string, input UploadInput) (TableOutput, error)

	// Export writes the current edited table next to the configured
	// source and returns the written file name.
	Export(ctx context.Context, sessionID string) (ExportOutput, error)

	// Scene derives the render-ready chart scene for the session.
	Scene(ctx context.Context, sessionID string) (SceneOutput, error)

	// ToggleLegend flips one legend group's visibility. The hidden set
	// persists across rebuilds within the session.
	ToggleLegend(ctx context.Context, sessionID string, input ToggleLegendInput) (ToggleLegendOutput, error)
}
