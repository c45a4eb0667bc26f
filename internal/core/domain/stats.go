package domain

import (
	"math"
	"time"
)

type Overview struct {
	TotalDays              int `json:"total_days"`
	CompletedDays          int `json:"completed_days"`
	CompletionRate         int `json:"completion_rate"`
	CurrentStreak          int `json:"current_streak"`
	LongestStreak          int `json:"longest_streak"`
	WeekCompletionPercent  int `json:"week_completion_percent"`
	MonthCompletionCount   int `json:"month_completion_count"`
	MonthCompletionPercent int `json:"month_completion_percent"`
}

func ComputeOverview(entries []ActivityLogEntry, now time.Time) Overview {
	log := NewActivityLog(entries)
	o := Overview{
		TotalDays:              len(log),
		CompletedDays:          log.CompletedCount(),
		CurrentStreak:          CurrentStreak(entries, now),
		LongestStreak:          LongestStreak(entries),
		WeekCompletionPercent:  WindowCompletionPercent(entries, WeekWindowDays, now),
		MonthCompletionCount:   WindowCompletionCount(entries, MonthWindowDays, now),
		MonthCompletionPercent: WindowCompletionPercent(entries, MonthWindowDays, now),
	}
	if o.TotalDays > 0 {
		o.CompletionRate = int(math.Round(float64(o.CompletedDays) / float64(o.TotalDays) * 100))
	}
	return o
}
