package usecase

import (
	"context"
	"path/filepath"

	"gantt-task-board/internal/gantt"
	"gantt-task-board/internal/schema"
)

// CreateSession loads the configured workbook into a fresh session.
func (uc *implUseCase) CreateSession(ctx context.Context) (gantt.SessionOutput, error) {
	rows, err := uc.repo.Load(ctx, uc.sourcePath)
	if err != nil {
		uc.l.Errorf(ctx, "repo.Load: %v", err)
		return gantt.SessionOutput{}, err
	}

	tasks, err := schema.Normalize(rows)
	if err != nil {
		uc.l.Warnf(ctx, "schema rejected %s: %v", uc.sourcePath, err)
		return gantt.SessionOutput{}, err
	}

	s := uc.sessions.Create(filepath.Base(uc.sourcePath))
	s.Update(tasks)

	uc.l.Infof(ctx, "session %s created with %d tasks from %s", s.ID, len(tasks), uc.sourcePath)
	return gantt.SessionOutput{
		SessionID: s.ID,
		Table:     gantt.TableOutput{Tasks: tasks},
	}, nil
}

// Reload re-reads the configured source workbook, discarding edits and
// any upload. Hidden legend groups survive: they are interaction
// state, not table state.
func (uc *implUseCase) Reload(ctx context.Context, sessionID string) (gantt.TableOutput, error) {
	s, err := uc.getSession(sessionID)
	if err != nil {
		return gantt.TableOutput{}, err
	}

	rows, err := uc.repo.Load(ctx, uc.sourcePath)
	if err != nil {
		uc.l.Errorf(ctx, "repo.Load: %v", err)
		return gantt.TableOutput{}, err
	}

	tasks, err := schema.Normalize(rows)
	if err != nil {
		return gantt.TableOutput{}, err
	}

	s.Replace(tasks, filepath.Base(uc.sourcePath), false)
	uc.l.Infof(ctx, "session %s reloaded %d tasks", sessionID, len(tasks))
	return gantt.TableOutput{Tasks: tasks}, nil
}

// Upload replaces the session table from an uploaded workbook. The
// uploaded base name takes over export naming until the next reload.
// A schema or decode failure keeps the previous table.
func (uc *implUseCase) Upload(ctx context.Context, sessionID string, input gantt.UploadInput) (gantt.TableOutput, error) {
	s, err := uc.getSession(sessionID)
	if err != nil {
		return gantt.TableOutput{}, err
	}
	if input.Reader == nil {
		return gantt.TableOutput{}, gantt.ErrEmptyUpload
	}

	rows, err := uc.repo.LoadReader(ctx, input.Reader)
	if err != nil {
		uc.l.Errorf(ctx, "repo.LoadReader: %v", err)
		return gantt.TableOutput{}, err
	}

	tasks, err := schema.Normalize(rows)
	if err != nil {
		uc.l.Warnf(ctx, "schema rejected upload %q: %v", input.FileName, err)
		return gantt.TableOutput{}, err
	}

	s.Replace(tasks, filepath.Base(input.FileName), true)
	uc.l.Infof(ctx, "session %s replaced table from upload %q (%d tasks)", sessionID, input.FileName, len(tasks))
	return gantt.TableOutput{Tasks: tasks}, nil
}
