package services

import (
	"context"
	"errors"
	"sync"

	"github.com/comitanigiacomo/deepstack-engine/internal/core/domain"
)

type GoalService struct {
	store   domain.Store
	program domain.Program
	mu      sync.Mutex
}

func NewGoalService(store domain.Store, program domain.Program) *GoalService {
	return &GoalService{
		store:   store,
		program: program,
	}
}

func (s *GoalService) validWeek(week int) error {
	if week < 1 || week > s.program.TotalWeeks {
		return domain.ErrInvalidWeek
	}
	return nil
}

// load returns the week's goals. The defaults are persisted only the first
// time a week is opened; after any other read failure they are returned
// unsaved together with the cause, so stored goals are never overwritten.
// Callers hold mu.
func (s *GoalService) load(ctx context.Context, week int) ([]domain.WeeklyGoal, error) {
	key := domain.WeeklyGoalsKey(week)
	goals, err := loadJSON[[]domain.WeeklyGoal](ctx, s.store, key, nil)
	switch {
	case err == nil:
		return goals, nil
	case errors.Is(err, domain.ErrKeyNotFound):
		goals = domain.DefaultWeeklyGoals()
		return goals, saveJSON(ctx, s.store, key, goals)
	default:
		return domain.DefaultWeeklyGoals(), err
	}
}

func (s *GoalService) Goals(ctx context.Context, week int) ([]domain.WeeklyGoal, error) {
	if err := s.validWeek(week); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// reads fail open: a failed seed or read still shows the defaults
	goals, _ := s.load(ctx, week)
	return goals, nil
}

func (s *GoalService) Toggle(ctx context.Context, week int, goalID string) ([]domain.WeeklyGoal, error) {
	if err := s.validWeek(week); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// a corrupted week restarts from the defaults; a failing store must not
	// have its goals replaced
	goals, err := s.load(ctx, week)
	if err != nil && !errors.Is(err, domain.ErrKeyNotFound) && !errors.Is(err, errCorruptDocument) {
		return nil, err
	}
	updated, err := domain.ToggleGoal(goals, goalID)
	if err != nil {
		return nil, err
	}
	if err := saveJSON(ctx, s.store, domain.WeeklyGoalsKey(week), updated); err != nil {
		return nil, err
	}
	return updated, nil
}
