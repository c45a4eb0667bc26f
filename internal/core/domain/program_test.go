package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/deepstack-engine/internal/core/domain"
)

func newTestProgram(t *testing.T) domain.Program {
	t.Helper()
	p, err := domain.NewProgram("2026-02-16", 65, time.UTC)
	require.NoError(t, err)
	return p
}

func TestNewProgram(t *testing.T) {
	t.Run("Error: Invalid start date", func(t *testing.T) {
		_, err := domain.NewProgram("16/02/2026", 65, time.UTC)
		assert.ErrorIs(t, err, domain.ErrInvalidProgram)
	})

	t.Run("Error: Non-positive weeks", func(t *testing.T) {
		_, err := domain.NewProgram("2026-02-16", 0, time.UTC)
		assert.ErrorIs(t, err, domain.ErrInvalidProgram)
	})

	t.Run("Nil location falls back to Local", func(t *testing.T) {
		p, err := domain.NewProgram("2026-02-16", 65, nil)
		require.NoError(t, err)
		assert.Equal(t, time.Local, p.Location)
		assert.Equal(t, 455, p.TotalDays())
	})
}

func TestProgram_ActiveBoundary(t *testing.T) {
	p := newTestProgram(t)

	dayBefore := time.Date(2026, 2, 15, 23, 59, 0, 0, time.UTC)
	firstDay := time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC)

	assert.False(t, p.IsActive(dayBefore))
	assert.Equal(t, 1, p.DaysUntilStart(dayBefore))
	assert.Equal(t, 0, p.DaysIntoProgram(dayBefore))
	assert.Equal(t, 0, p.CurrentWeek(dayBefore))

	assert.True(t, p.IsActive(firstDay))
	assert.Equal(t, 0, p.DaysUntilStart(firstDay))
	assert.Equal(t, 1, p.DaysIntoProgram(firstDay))
	assert.Equal(t, 1, p.CurrentWeek(firstDay))
}

func TestProgram_CurrentWeek(t *testing.T) {
	p := newTestProgram(t)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"Day 7 is still week 1", time.Date(2026, 2, 22, 10, 0, 0, 0, time.UTC), 1},
		{"Day 8 starts week 2", time.Date(2026, 2, 23, 10, 0, 0, 0, time.UTC), 2},
		{"Last program day", time.Date(2027, 5, 16, 10, 0, 0, 0, time.UTC), 65},
		{"After the program clamps to the last week", time.Date(2028, 1, 1, 10, 0, 0, 0, time.UTC), 65},
		{"A month before start", time.Date(2026, 1, 16, 10, 0, 0, 0, time.UTC), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.CurrentWeek(tt.now))
		})
	}
}

func TestProgram_DaysUntilStart(t *testing.T) {
	p := newTestProgram(t)

	assert.Equal(t, 31, p.DaysUntilStart(time.Date(2026, 1, 16, 8, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, p.DaysUntilStart(time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)))
}

func TestProgram_UsesConfiguredLocation(t *testing.T) {
	tbilisi := time.FixedZone("GET", 4*60*60)
	p, err := domain.NewProgram("2026-02-16", 65, tbilisi)
	require.NoError(t, err)

	// 21:00 UTC on the 15th is already the 16th in UTC+4.
	now := time.Date(2026, 2, 15, 21, 0, 0, 0, time.UTC)

	assert.True(t, p.IsActive(now))
	assert.Equal(t, 1, p.DaysIntoProgram(now))
}

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, 0.0, domain.ProgressPercent(0, 65))
	assert.Equal(t, 0.0, domain.ProgressPercent(-3, 65))
	assert.InDelta(t, 1.538, domain.ProgressPercent(1, 65), 0.01)
	assert.Equal(t, 100.0, domain.ProgressPercent(65, 65))
	assert.Equal(t, 100.0, domain.ProgressPercent(80, 65))
	assert.Equal(t, 0.0, domain.ProgressPercent(3, 0))
}

func TestProgram_Status(t *testing.T) {
	p := newTestProgram(t)

	status := p.Status(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))

	assert.True(t, status.Active)
	assert.Equal(t, "2026-02-16", status.StartDate)
	assert.Equal(t, 23, status.DaysIntoProgram)
	assert.Equal(t, 4, status.CurrentWeek)
	assert.Equal(t, 455, status.TotalDays)
	assert.InDelta(t, 6.15, status.ProgressPercent, 0.01)
}
