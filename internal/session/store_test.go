package session_test

import (
	"errors"
	"testing"

	"gantt-task-board/internal/model"
	"gantt-task-board/internal/session"
)

func TestStore(t *testing.T) {
	t.Run("Create And Get", func(t *testing.T) {
		st, err := session.NewStore(4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		s := st.Create("plan.xlsx")
		if s.ID == "" {
			t.Fatalf("expected generated session id")
		}

		got, err := st.Get(s.ID)
		if err != nil || got != s {
			t.Errorf("expected same session back, got %v (%v)", got, err)
		}
	})

	t.Run("Unknown Id", func(t *testing.T) {
		st, _ := session.NewStore(4)
		if _, err := st.Get("nope"); !errors.Is(err, session.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("LRU Eviction Expires Oldest", func(t *testing.T) {
		st, _ := session.NewStore(2)
		first := st.Create("a.xlsx")
		st.Create("b.xlsx")
		st.Create("c.xlsx")
		if _, err := st.Get(first.ID); !errors.Is(err, session.ErrNotFound) {
			t.Errorf("oldest session should be evicted at capacity")
		}
		if st.Len() != 2 {
			t.Errorf("expected 2 live sessions, got %d", st.Len())
		}
	})
}

func TestSessionState(t *testing.T) {
	st, _ := session.NewStore(4)
	s := st.Create("plan.xlsx")

	t.Run("Toggle Persists Across Table Updates", func(t *testing.T) {
		if hidden := s.ToggleGroup("cat:Alpha"); !hidden {
			t.Fatalf("first toggle hides")
		}
		s.Update([]model.Task{{ID: "T1"}})
		if !s.HiddenGroups()["cat:Alpha"] {
			t.Errorf("hidden groups must survive a table rebuild")
		}
		if hidden := s.ToggleGroup("cat:Alpha"); hidden {
			t.Errorf("second toggle shows again")
		}
	})

	t.Run("Replace Tracks Upload Source", func(t *testing.T) {
		s.Replace([]model.Task{{ID: "T2"}}, "upload.xlsx", true)
		name, uploaded := s.Source()
		if name != "upload.xlsx" || !uploaded {
			t.Errorf("expected uploaded source, got %q %v", name, uploaded)
		}
	})

	t.Run("Tasks Returns Copy", func(t *testing.T) {
		tasks := s.Tasks()
		if len(tasks) != 1 || tasks[0].ID != "T2" {
			t.Fatalf("unexpected table: %+v", tasks)
		}
		tasks[0].ID = "mutated"
		if s.Tasks()[0].ID != "T2" {
			t.Errorf("Tasks must return a defensive copy")
		}
	})
}
