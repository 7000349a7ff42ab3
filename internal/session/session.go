package session

import (
	"sync"

	"gantt-task-board/internal/model"
)

// Session owns one client's board state: the canonical table, the
// hidden legend groups, and the source the table was loaded from.
// Sessions never share state; each mutation swaps in a freshly
// normalized table under the session lock.
type Session struct {
	ID string

	mu         sync.Mutex
	tasks      []model.Task
	hidden     map[string]bool
	sourceName string // base name used to derive the export file name
	uploaded   bool   // true once the table came from a one-off upload
}

func newSession(id, sourceName string) *Session {
	return &Session{
		ID:         id,
		hidden:     make(map[string]bool),
		sourceName: sourceName,
	}
}

// Update replaces the canonical table. Hidden-group state survives:
// it is user interaction state, not derived from task data.
func (s *Session) Update(tasks []model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
}

// Replace swaps both the table and the source it came from, marking
// the session as upload-backed when fromUpload is set.
func (s *Session) Replace(tasks []model.Task, sourceName string, fromUpload bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
	s.sourceName = sourceName
	s.uploaded = fromUpload
}

// Tasks returns a copy of the canonical table.
func (s *Session) Tasks() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// ToggleGroup flips one legend group's visibility and returns the new
// hidden state of that group.
func (s *Session) ToggleGroup(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hidden[key] {
		delete(s.hidden, key)
		return false
	}
	s.hidden[key] = true
	return true
}

// HiddenGroups returns a copy of the hidden legend-group set.
func (s *Session) HiddenGroups() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]bool, len(s.hidden))
	for k, v := range s.hidden {
		out[k] = v
	}
	return out
}

// Source returns the current source base name and whether it came from
// an upload.
func (s *Session) Source() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sourceName, s.uploaded
}
