package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/deepstack-engine/internal/core/domain"
	"github.com/comitanigiacomo/deepstack-engine/internal/core/services"
)

func TestProgressService_ToggleToday(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: First toggle completes today, second reverts it", func(t *testing.T) {
		store := NewFakeStore()
		svc := services.NewProgressService(store, newTestProgram(t))

		entry, err := svc.ToggleToday(ctx, testNow)
		require.NoError(t, err)
		assert.Equal(t, "2026-03-10", entry.Date)
		assert.True(t, entry.Completed)
		assert.Equal(t, domain.DefaultActivityLabel, entry.Activity)

		entry, err = svc.ToggleToday(ctx, testNow.Add(time.Minute))
		require.NoError(t, err)
		assert.False(t, entry.Completed)

		var stored []domain.ActivityLogEntry
		store.decode(t, domain.KeyActivityLogs, &stored)
		require.Len(t, stored, 1, "one entry per date")
		assert.False(t, stored[0].Completed)
	})

	t.Run("Success: Toggle uses the program time zone", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		program, err := domain.NewProgram("2026-02-16", 65, tokyo)
		require.NoError(t, err)
		svc := services.NewProgressService(NewFakeStore(), program)

		entry, err := svc.ToggleToday(ctx, time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, "2026-03-11", entry.Date)
	})

	t.Run("Success: Corrupted log is treated as empty", func(t *testing.T) {
		store := NewFakeStore()
		store.data[domain.KeyActivityLogs] = []byte("{not json")
		svc := services.NewProgressService(store, newTestProgram(t))

		assert.Empty(t, svc.Logs(ctx))

		entry, err := svc.ToggleToday(ctx, testNow)
		require.NoError(t, err)
		assert.True(t, entry.Completed)
		assert.Len(t, svc.Logs(ctx), 1)
	})

	t.Run("Success: Type-mismatched log is treated as empty", func(t *testing.T) {
		store := NewFakeStore()
		store.data[domain.KeyActivityLogs] = []byte(`[` +
			`{"date":"2026-03-10","activity":"Daily protocol","completed":true,"timestamp":1},` +
			`{"date":"2026-03-09","activity":"Daily protocol","completed":"yes","timestamp":2}]`)
		svc := services.NewProgressService(store, newTestProgram(t))

		assert.Empty(t, svc.Logs(ctx))
		assert.Equal(t, 0, svc.Stats(ctx, testNow).CurrentStreak)
	})

	t.Run("Success: Entries with malformed dates are skipped", func(t *testing.T) {
		store := NewFakeStore()
		store.put(t, domain.KeyActivityLogs, []domain.ActivityLogEntry{
			{Date: "2026-03-10", Completed: true, Timestamp: 1},
			{Date: "10/03/2026", Completed: true, Timestamp: 2},
			{Date: "", Completed: true, Timestamp: 3},
		})
		svc := services.NewProgressService(store, newTestProgram(t))

		logs := svc.Logs(ctx)
		require.Len(t, logs, 1)
		assert.Equal(t, "2026-03-10", logs[0].Date)
	})

	t.Run("Fail: Program has not started", func(t *testing.T) {
		store := NewFakeStore()
		svc := services.NewProgressService(store, newTestProgram(t))

		_, err := svc.ToggleToday(ctx, time.Date(2026, 2, 15, 9, 0, 0, 0, time.UTC))
		assert.ErrorIs(t, err, domain.ErrProgramNotStarted)
		assert.Empty(t, store.data)
	})

	t.Run("Fail: Write error propagates", func(t *testing.T) {
		store := new(MockStore)
		store.On("Get", mock.Anything, domain.KeyActivityLogs).Return(nil, domain.ErrKeyNotFound)
		store.On("Set", mock.Anything, domain.KeyActivityLogs, mock.Anything).Return(errors.New("disk full"))
		svc := services.NewProgressService(store, newTestProgram(t))

		_, err := svc.ToggleToday(ctx, testNow)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
		store.AssertExpectations(t)
	})
}

func TestProgressService_SetDay(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Back-filled days extend the streak", func(t *testing.T) {
		store := NewFakeStore()
		svc := services.NewProgressService(store, newTestProgram(t))

		_, err := svc.ToggleToday(ctx, testNow)
		require.NoError(t, err)
		// written after today's entry but stamped inside their own day
		_, err = svc.SetDay(ctx, "2026-03-08", true, testNow)
		require.NoError(t, err)
		entry, err := svc.SetDay(ctx, "2026-03-09", true, testNow)
		require.NoError(t, err)

		assert.Less(t, entry.Timestamp, testNow.UnixMilli())
		assert.Equal(t, 3, svc.Stats(ctx, testNow).CurrentStreak)
		assert.Equal(t, 3, svc.Stats(ctx, testNow).LongestStreak)
	})

	t.Run("Fail: Future date", func(t *testing.T) {
		svc := services.NewProgressService(NewFakeStore(), newTestProgram(t))

		_, err := svc.SetDay(ctx, "2026-03-11", true, testNow)
		assert.ErrorIs(t, err, domain.ErrFutureDate)
	})

	t.Run("Fail: Date before the program start", func(t *testing.T) {
		svc := services.NewProgressService(NewFakeStore(), newTestProgram(t))

		_, err := svc.SetDay(ctx, "2026-02-15", true, testNow)
		assert.ErrorIs(t, err, domain.ErrProgramNotStarted)

		_, err = svc.SetDay(ctx, "2026-02-16", true, testNow)
		assert.NoError(t, err, "the first day is loggable")
	})

	t.Run("Fail: Malformed date", func(t *testing.T) {
		svc := services.NewProgressService(NewFakeStore(), newTestProgram(t))

		_, err := svc.SetDay(ctx, "10/03/2026", true, testNow)
		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})
}

func TestProgressService_StatsAndAchievements(t *testing.T) {
	ctx := context.Background()
	store := NewFakeStore()

	var entries []domain.ActivityLogEntry
	for d := 6; d >= 0; d-- {
		day := testNow.AddDate(0, 0, -d)
		entries = append(entries, domain.NewActivityLogEntry(domain.FormatDate(day), true, day))
	}
	store.put(t, domain.KeyActivityLogs, entries)
	svc := services.NewProgressService(store, newTestProgram(t))

	stats := svc.Stats(ctx, testNow)
	assert.Equal(t, 7, stats.CurrentStreak)
	assert.Equal(t, 7, stats.CompletedDays)
	assert.Equal(t, 100, stats.WeekCompletionPercent)

	unlocked := map[string]bool{}
	for _, a := range svc.Achievements(ctx, testNow) {
		unlocked[a.ID] = a.Unlocked
	}
	assert.True(t, unlocked[domain.AchievementWeekWarrior])
	assert.False(t, unlocked[domain.AchievementMonthMaster])

	status := svc.Program(testNow)
	assert.Equal(t, 4, status.CurrentWeek)
}

func TestProgressService_ConcurrentToggles(t *testing.T) {
	ctx := context.Background()
	store := NewFakeStore()
	svc := services.NewProgressService(store, newTestProgram(t))

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func(i int) {
			defer func() { done <- struct{}{} }()
			_, _ = svc.SetDay(ctx, domain.FormatDate(testNow.AddDate(0, 0, -i)), true, testNow)
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	assert.Len(t, svc.Logs(ctx), 10, "serialized writes never lose an entry")
}
