package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

// logged builds an entry n days before testNow, written at noon of that day.
func logged(daysAgo int, completed bool) ActivityLogEntry {
	day := StartOfDay(testNow).AddDate(0, 0, -daysAgo).Add(12 * time.Hour)
	return ActivityLogEntry{
		Date:      FormatDate(day),
		Activity:  DefaultActivityLabel,
		Completed: completed,
		Timestamp: day.UnixMilli(),
	}
}

func TestCurrentAndLongestStreak(t *testing.T) {
	tests := []struct {
		name        string
		entries     []ActivityLogEntry
		wantCurrent int
		wantLongest int
	}{
		{
			name:        "Empty entries",
			entries:     []ActivityLogEntry{},
			wantCurrent: 0,
			wantLongest: 0,
		},
		{
			name:        "Single entry today",
			entries:     []ActivityLogEntry{logged(0, true)},
			wantCurrent: 1,
			wantLongest: 1,
		},
		{
			name:        "Single entry yesterday (today not logged breaks the streak)",
			entries:     []ActivityLogEntry{logged(1, true)},
			wantCurrent: 0,
			wantLongest: 1,
		},
		{
			name: "Today, yesterday, 2 days ago completed, 3 days ago missed",
			entries: []ActivityLogEntry{
				logged(3, false), logged(2, true), logged(1, true), logged(0, true),
			},
			wantCurrent: 3,
			wantLongest: 3,
		},
		{
			name:        "Yesterday and the day before but not today",
			entries:     []ActivityLogEntry{logged(2, true), logged(1, true)},
			wantCurrent: 0,
			wantLongest: 2,
		},
		{
			name: "Gap after yesterday",
			entries: []ActivityLogEntry{
				logged(4, true), logged(1, true), logged(0, true),
			},
			wantCurrent: 2,
			wantLongest: 2,
		},
		{
			name: "Longest streak in the past",
			entries: []ActivityLogEntry{
				logged(12, true), logged(11, true), logged(10, true), logged(0, true),
			},
			wantCurrent: 1,
			wantLongest: 3,
		},
		{
			name: "Unsorted input is ordered by timestamp",
			entries: []ActivityLogEntry{
				logged(1, true), logged(0, true), logged(2, true),
			},
			wantCurrent: 3,
			wantLongest: 3,
		},
		{
			name: "Incomplete day today ends the streak",
			entries: []ActivityLogEntry{
				logged(2, true), logged(1, true), logged(0, false),
			},
			wantCurrent: 0,
			wantLongest: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCurrent, CurrentStreak(tt.entries, testNow), "Current Streak mismatch")
			assert.Equal(t, tt.wantLongest, LongestStreak(tt.entries), "Longest Streak mismatch")
		})
	}
}

func TestStreak_DuplicateDates(t *testing.T) {
	t.Run("Later write for the same date wins", func(t *testing.T) {
		undone := logged(0, false)
		undone.Timestamp += 1000

		entries := []ActivityLogEntry{logged(1, true), logged(0, true), undone}

		assert.Equal(t, 0, CurrentStreak(entries, testNow))
		assert.Equal(t, 1, LongestStreak(entries))
	})

	t.Run("Duplicate completed date counts once", func(t *testing.T) {
		again := logged(0, true)
		again.Timestamp += 1000

		entries := []ActivityLogEntry{logged(1, true), logged(0, true), again}

		assert.Equal(t, 2, CurrentStreak(entries, testNow))
		assert.Equal(t, 2, LongestStreak(entries))
	})
}

func TestStreak_RunEndingToday(t *testing.T) {
	for k := 1; k <= 40; k += 13 {
		var entries []ActivityLogEntry
		for d := k - 1; d >= 0; d-- {
			entries = append(entries, logged(d, true))
		}
		entries = append(entries, logged(k+1, true))

		assert.Equal(t, k, CurrentStreak(entries, testNow))
		assert.GreaterOrEqual(t, LongestStreak(entries), k)
	}
}

func TestCurrentStreak_IgnoresTimeOfDay(t *testing.T) {
	entries := []ActivityLogEntry{logged(1, true), logged(0, true)}

	earlyMorning := StartOfDay(testNow).Add(5 * time.Minute)
	lateNight := StartOfDay(testNow).Add(23*time.Hour + 59*time.Minute)

	assert.Equal(t, 2, CurrentStreak(entries, earlyMorning))
	assert.Equal(t, 2, CurrentStreak(entries, lateNight))
}
