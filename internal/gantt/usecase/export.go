package usecase

import (
	"context"
	"path/filepath"
	"strings"

	"gantt-task-board/internal/gantt"
)

// exportSuffix is appended to the source file's stem.
const exportSuffix = "_updated"

// Export writes the current edited table — not the original — next to
// the configured source. The output name derives from the session's
// source base name, so an uploaded workbook exports under the
// uploaded name's stem.
func (uc *implUseCase) Export(ctx context.Context, sessionID string) (gantt.ExportOutput, error) {
	s, err := uc.getSession(sessionID)
	if err != nil {
		return gantt.ExportOutput{}, err
	}

	sourceName, _ := s.Source()
	fileName := exportFileName(sourceName)
	path := filepath.Join(filepath.Dir(uc.sourcePath), fileName)

	if err := uc.repo.Save(ctx, path, s.Tasks()); err != nil {
		uc.l.Errorf(ctx, "repo.Save: %v", err)
		return gantt.ExportOutput{}, err
	}

	uc.l.Infof(ctx, "session %s exported to %s", sessionID, path)
	return gantt.ExportOutput{FileName: fileName, Path: path}, nil
}

// exportFileName turns "plan.xlsx" into "plan_updated.xlsx".
func exportFileName(sourceName string) string {
	ext := filepath.Ext(sourceName)
	stem := strings.TrimSuffix(sourceName, ext)
	return stem + exportSuffix + ext
}
