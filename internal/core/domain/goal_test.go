package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/deepstack-engine/internal/core/domain"
)

func TestDefaultWeeklyGoals(t *testing.T) {
	goals := domain.DefaultWeeklyGoals()

	require.Len(t, goals, 5)
	for _, g := range goals {
		assert.False(t, g.Completed)
		assert.Contains(t, []string{domain.GoalCategoryTheory, domain.GoalCategoryPractice, domain.GoalCategoryDSA}, g.Category)
	}
	assert.Equal(t, 0, domain.GoalsCompletion(goals))
}

func TestToggleGoal(t *testing.T) {
	goals := domain.DefaultWeeklyGoals()

	t.Run("Toggles without mutating the input", func(t *testing.T) {
		updated, err := domain.ToggleGoal(goals, "3")
		require.NoError(t, err)

		assert.True(t, updated[2].Completed)
		assert.False(t, goals[2].Completed)
		assert.Equal(t, 20, domain.GoalsCompletion(updated))

		back, err := domain.ToggleGoal(updated, "3")
		require.NoError(t, err)
		assert.False(t, back[2].Completed)
	})

	t.Run("Error: Unknown goal", func(t *testing.T) {
		_, err := domain.ToggleGoal(goals, "42")
		assert.ErrorIs(t, err, domain.ErrGoalNotFound)
	})
}

func TestGoalsCompletion(t *testing.T) {
	assert.Equal(t, 0, domain.GoalsCompletion(nil))
	assert.Equal(t, 67, domain.GoalsCompletion([]domain.WeeklyGoal{
		{ID: "a", Completed: true}, {ID: "b", Completed: true}, {ID: "c"},
	}))
}
