package usecase

import (
	"time"

	"gantt-task-board/internal/gantt"
	"gantt-task-board/internal/gantt/repository"
	"gantt-task-board/internal/session"
	pkgLog "gantt-task-board/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.WorkbookRepository
	sessions   *session.Store
	sourcePath string
	now        func() time.Time
}

var _ gantt.UseCase = (*implUseCase)(nil)

// New creates a new gantt UseCase instance. sourcePath is the
// configured workbook every fresh session loads from.
func New(
	l pkgLog.Logger,
	repo repository.WorkbookRepository,
	sessions *session.Store,
	sourcePath string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		sessions:   sessions,
		sourcePath: sourcePath,
		now:        time.Now,
	}
}
