package usecase

import (
	"errors"

	"gantt-task-board/internal/gantt"
	"gantt-task-board/internal/session"
)

// getSession resolves a session id into the live session, translating
// store misses into the domain error.
func (uc *implUseCase) getSession(id string) (*session.Session, error) {
	s, err := uc.sessions.Get(id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, gantt.ErrSessionNotFound
		}
		return nil, err
	}
	return s, nil
}
