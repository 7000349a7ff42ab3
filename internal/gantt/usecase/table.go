package usecase

import (
	"context"

	"gantt-task-board/internal/gantt"
	"gantt-task-board/internal/schema"
)

// Table returns the session's current canonical table.
func (uc *implUseCase) Table(ctx context.Context, sessionID string) (gantt.TableOutput, error) {
	s, err := uc.getSession(sessionID)
	if err != nil {
		return gantt.TableOutput{}, err
	}
	return gantt.TableOutput{Tasks: s.Tasks()}, nil
}

// ReplaceRows rebuilds the canonical table from edited rows. The
// previous table stays in place when normalization fails.
func (uc *implUseCase) ReplaceRows(ctx context.Context, sessionID string, input gantt.ReplaceRowsInput) (gantt.TableOutput, error) {
	s, err := uc.getSession(sessionID)
	if err != nil {
		return gantt.TableOutput{}, err
	}

	tasks, err := schema.Normalize(input.Rows)
	if err != nil {
		uc.l.Warnf(ctx, "session %s edit rejected: %v", sessionID, err)
		return gantt.TableOutput{}, err
	}

	s.Update(tasks)
	uc.l.Debugf(ctx, "session %s table replaced (%d tasks)", sessionID, len(tasks))
	return gantt.TableOutput{Tasks: tasks}, nil
}

// DeleteRow removes one row by canonical index and renormalizes the
// remainder, so derived state downstream sees a fresh table.
func (uc *implUseCase) DeleteRow(ctx context.Context, sessionID string, index int) (gantt.TableOutput, error) {
	s, err := uc.getSession(sessionID)
	if err != nil {
		return gantt.TableOutput{}, err
	}

	current := s.Tasks()
	if index < 0 || index >= len(current) {
		return gantt.TableOutput{}, gantt.ErrRowIndex
	}

	remaining := append(current[:index:index], current[index+1:]...)
	tasks, err := schema.Normalize(schema.RowsFromTasks(remaining))
	if err != nil {
		return gantt.TableOutput{}, err
	}

	s.Update(tasks)
	uc.l.Debugf(ctx, "session %s row %d deleted (%d tasks remain)", sessionID, index, len(tasks))
	return gantt.TableOutput{Tasks: tasks}, nil
}
