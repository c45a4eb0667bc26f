package domain

import "time"

const (
	AchievementFirstStep    = "first_step"
	AchievementWeekWarrior  = "week_warrior"
	AchievementMonthMaster  = "month_master"
	AchievementDedicated    = "dedicated"
	AchievementCentury      = "century"
	AchievementPerfectMonth = "perfect_month"
)

type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

// AchievementInput is the snapshot every unlock rule reads from.
type AchievementInput struct {
	CompletedCount       int
	CurrentStreak        int
	MonthCompletionCount int
}

type achievementRule struct {
	id          string
	title       string
	description string
	unlocked    func(AchievementInput) bool
}

var achievementRules = []achievementRule{
	{AchievementFirstStep, "First Step", "Complete your first day", func(in AchievementInput) bool {
		return in.CompletedCount >= 1
	}},
	{AchievementWeekWarrior, "Week Warrior", "Reach a 7-day streak", func(in AchievementInput) bool {
		return in.CurrentStreak >= 7
	}},
	{AchievementMonthMaster, "Month Master", "Reach a 30-day streak", func(in AchievementInput) bool {
		return in.CurrentStreak >= 30
	}},
	{AchievementDedicated, "Dedicated", "Complete 50 days", func(in AchievementInput) bool {
		return in.CompletedCount >= 50
	}},
	{AchievementCentury, "Century", "Complete 100 days", func(in AchievementInput) bool {
		return in.CompletedCount >= 100
	}},
	{AchievementPerfectMonth, "Perfect Month", "Complete every day of the last 30", func(in AchievementInput) bool {
		return in.MonthCompletionCount == MonthWindowDays
	}},
}

// EvaluateAchievements recomputes every badge from scratch, in a fixed order.
func EvaluateAchievements(entries []ActivityLogEntry, now time.Time) []Achievement {
	input := AchievementInput{
		CompletedCount:       NewActivityLog(entries).CompletedCount(),
		CurrentStreak:        CurrentStreak(entries, now),
		MonthCompletionCount: WindowCompletionCount(entries, MonthWindowDays, now),
	}

	out := make([]Achievement, 0, len(achievementRules))
	for _, r := range achievementRules {
		out = append(out, Achievement{
			ID:          r.id,
			Title:       r.title,
			Description: r.description,
			Unlocked:    r.unlocked(input),
		})
	}
	return out
}

func UnlockedCount(achievements []Achievement) int {
	n := 0
	for _, a := range achievements {
		if a.Unlocked {
			n++
		}
	}
	return n
}
