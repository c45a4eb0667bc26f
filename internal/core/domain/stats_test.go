package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeOverview(t *testing.T) {
	t.Run("Empty log returns zero stats", func(t *testing.T) {
		o := ComputeOverview(nil, testNow)

		assert.Equal(t, Overview{}, o)
	})

	t.Run("Aggregates distinct dates only", func(t *testing.T) {
		dup := logged(0, true)
		dup.Timestamp += 10

		entries := []ActivityLogEntry{
			logged(3, false),
			logged(2, true),
			logged(1, true),
			logged(0, true),
			dup,
		}

		o := ComputeOverview(entries, testNow)

		assert.Equal(t, 4, o.TotalDays)
		assert.Equal(t, 3, o.CompletedDays)
		assert.Equal(t, 75, o.CompletionRate)
		assert.Equal(t, 3, o.CurrentStreak)
		assert.Equal(t, 3, o.LongestStreak)
		assert.Equal(t, 43, o.WeekCompletionPercent)
		assert.Equal(t, 3, o.MonthCompletionCount)
		assert.Equal(t, 10, o.MonthCompletionPercent)
	})
}
