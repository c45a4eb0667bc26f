package domain

import (
	"sort"
	"time"
)

// CurrentStreak counts consecutive completed days ending today. The most
// recent completed entry must be today, the next one yesterday and so on;
// the first gap ends the scan. Entries are ordered by write time, newest first.
func CurrentStreak(entries []ActivityLogEntry, now time.Time) int {
	completed := NewActivityLog(entries).completed()
	sort.Slice(completed, func(i, j int) bool {
		if completed[i].Timestamp == completed[j].Timestamp {
			return completed[i].Date > completed[j].Date
		}
		return completed[i].Timestamp > completed[j].Timestamp
	})

	today := StartOfDay(now)
	streak := 0
	for _, e := range completed {
		entryDate, err := ParseDate(e.Date, now.Location())
		if err != nil {
			break
		}
		if DaysBetween(entryDate, today) != streak {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak is the longest run of completed entries, in write order,
// whose dates advance by exactly one day.
func LongestStreak(entries []ActivityLogEntry) int {
	completed := NewActivityLog(entries).completed()
	sort.Slice(completed, func(i, j int) bool {
		if completed[i].Timestamp == completed[j].Timestamp {
			return completed[i].Date < completed[j].Date
		}
		return completed[i].Timestamp < completed[j].Timestamp
	})

	longest, current := 0, 0
	var last time.Time
	for _, e := range completed {
		date, err := time.Parse(DateLayout, e.Date)
		if err != nil {
			continue
		}
		if current > 0 && DaysBetween(last, date) == 1 {
			current++
		} else {
			longest = max(longest, current)
			current = 1
		}
		last = date
	}
	return max(longest, current)
}
