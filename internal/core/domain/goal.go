package domain

import (
	"errors"
	"math"
)

var (
	ErrGoalNotFound = errors.New("weekly goal not found")
	ErrInvalidWeek  = errors.New("week is outside the program")
)

const (
	GoalCategoryTheory   = "theory"
	GoalCategoryPractice = "practice"
	GoalCategoryDSA      = "dsa"
)

type WeeklyGoal struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Completed bool   `json:"completed"`
}

// DefaultWeeklyGoals seeds a program week that has no goals yet.
func DefaultWeeklyGoals() []WeeklyGoal {
	return []WeeklyGoal{
		{ID: "1", Title: "Watch the week's lecture", Category: GoalCategoryTheory},
		{ID: "2", Title: "Solve 3+ practical exercises", Category: GoalCategoryPractice},
		{ID: "3", Title: "Solve 5+ DSA problems", Category: GoalCategoryDSA},
		{ID: "4", Title: "Finish the weekly project", Category: GoalCategoryPractice},
		{ID: "5", Title: "Review the theory material", Category: GoalCategoryTheory},
	}
}

// ToggleGoal flips one goal and returns the updated copy of the list.
func ToggleGoal(goals []WeeklyGoal, id string) ([]WeeklyGoal, error) {
	out := make([]WeeklyGoal, len(goals))
	copy(out, goals)
	for i := range out {
		if out[i].ID == id {
			out[i].Completed = !out[i].Completed
			return out, nil
		}
	}
	return nil, ErrGoalNotFound
}

func GoalsCompletion(goals []WeeklyGoal) int {
	if len(goals) == 0 {
		return 0
	}
	done := 0
	for _, g := range goals {
		if g.Completed {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(goals)) * 100))
}
