package usecase

import (
	"context"
	"sort"

	"gantt-task-board/internal/dependency"
	"gantt-task-board/internal/gantt"
	"gantt-task-board/internal/scene"
)

// Scene recomputes resolver output and the chart scene from the
// session's current table and hidden-group state. Nothing is cached:
// the whole pipeline is cheap enough to run per request.
func (uc *implUseCase) Scene(ctx context.Context, sessionID string) (gantt.SceneOutput, error) {
	s, err := uc.getSession(sessionID)
	if err != nil {
		return gantt.SceneOutput{}, err
	}

	tasks := s.Tasks()
	res := dependency.Resolve(tasks)
	built := scene.Build(tasks, res, s.HiddenGroups(), uc.now())

	return gantt.SceneOutput{Scene: built}, nil
}

// ToggleLegend flips one legend group's visibility in the session.
func (uc *implUseCase) ToggleLegend(ctx context.Context, sessionID string, input gantt.ToggleLegendInput) (gantt.ToggleLegendOutput, error) {
	if input.Group == "" {
		return gantt.ToggleLegendOutput{}, gantt.ErrEmptyGroup
	}

	s, err := uc.getSession(sessionID)
	if err != nil {
		return gantt.ToggleLegendOutput{}, err
	}

	hidden := s.ToggleGroup(input.Group)

	groups := make([]string, 0)
	for key := range s.HiddenGroups() {
		groups = append(groups, key)
	}
	sort.Strings(groups)

	uc.l.Debugf(ctx, "session %s group %q hidden=%v", sessionID, input.Group, hidden)
	return gantt.ToggleLegendOutput{
		Group:        input.Group,
		Hidden:       hidden,
		HiddenGroups: groups,
	}, nil
}
