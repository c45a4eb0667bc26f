package domain

import (
	"math"
	"time"
)

const (
	WeekWindowDays  = 7
	MonthWindowDays = 30
)

// WindowDates lists the windowDays calendar dates ending at reference, oldest first.
func WindowDates(windowDays int, reference time.Time) []string {
	if windowDays <= 0 {
		return nil
	}
	dates := make([]string, 0, windowDays)
	day := StartOfDay(reference)
	for i := windowDays - 1; i >= 0; i-- {
		dates = append(dates, FormatDate(day.AddDate(0, 0, -i)))
	}
	return dates
}

// WindowCompletionCount counts completed dates in the trailing window ending
// at reference (inclusive). The result is always within [0, windowDays].
func WindowCompletionCount(entries []ActivityLogEntry, windowDays int, reference time.Time) int {
	log := NewActivityLog(entries)
	count := 0
	for _, date := range WindowDates(windowDays, reference) {
		if log.IsCompleted(date) {
			count++
		}
	}
	return count
}

func WindowCompletionPercent(entries []ActivityLogEntry, windowDays int, reference time.Time) int {
	if windowDays <= 0 {
		return 0
	}
	count := WindowCompletionCount(entries, windowDays, reference)
	return int(math.Round(float64(count) / float64(windowDays) * 100))
}
