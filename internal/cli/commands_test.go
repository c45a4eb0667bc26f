package cli

import (
	"bytes"
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/deepstack-engine/internal/adapters/repository"
	"github.com/comitanigiacomo/deepstack-engine/internal/app"
	"github.com/comitanigiacomo/deepstack-engine/internal/config"
	"github.com/comitanigiacomo/deepstack-engine/internal/core/domain"
)

// Tuesday 2026-03-10 12:30, program week 4.
var fixedNow = time.Date(2026, 3, 10, 12, 30, 0, 0, time.UTC)

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripped(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

func newTestOptions(t *testing.T, now time.Time) Options {
	t.Helper()
	store := repository.NewInMemoryStore()
	cfg := config.Config{ProgramStart: "2026-02-16", ProgramWeeks: 65, Location: time.UTC}

	return Options{
		Open: func(ctx context.Context, dbPath string) (*app.Services, func(), error) {
			svc, err := app.NewServices(ctx, cfg, store)
			return svc, func() {}, err
		},
		Now: func() time.Time { return now },
	}
}

func run(t *testing.T, opts Options, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(opts)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stripped(out.String()), err
}

func TestLogAndStats(t *testing.T) {
	opts := newTestOptions(t, fixedNow)

	out, err := run(t, opts, "log")
	require.NoError(t, err)
	assert.Contains(t, out, "2026-03-10 marked")
	assert.Contains(t, out, "completed")

	_, err = run(t, opts, "log", "--date", "2026-03-09")
	require.NoError(t, err)

	out, err = run(t, opts, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Current streak")
	assert.Contains(t, out, "2 / 2 (100%)")

	out, err = run(t, opts, "log", "--undo")
	require.NoError(t, err)
	assert.Contains(t, out, "not completed")

	_, err = run(t, opts, "log", "--date", "2026-03-11")
	assert.Error(t, err, "future dates are rejected")
}

func TestStatus(t *testing.T) {
	t.Run("During the program", func(t *testing.T) {
		out, err := run(t, newTestOptions(t, fixedNow), "status")
		require.NoError(t, err)

		assert.Contains(t, out, "Week 4 of 65")
		assert.Contains(t, out, "Standup")
		assert.Contains(t, out, "Goroutines and channels")
		assert.Contains(t, out, "0 days")
	})

	t.Run("Before the program", func(t *testing.T) {
		out, err := run(t, newTestOptions(t, time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)), "status")
		require.NoError(t, err)

		assert.Contains(t, out, "Program starts 2026-02-16")
		assert.Contains(t, out, "15 days to go")
	})
}

func TestAchievementsAndSchedule(t *testing.T) {
	opts := newTestOptions(t, fixedNow)

	out, err := run(t, opts, "achievements")
	require.NoError(t, err)
	assert.Contains(t, out, "Achievements 0/6")
	assert.Contains(t, out, "First Step")

	out, err = run(t, opts, "schedule")
	require.NoError(t, err)
	assert.Contains(t, out, "> 12:15  Standup")
	assert.Contains(t, out, "23:00  Sleep")
}

func TestNoteAndGoals(t *testing.T) {
	opts := newTestOptions(t, fixedNow)

	out, err := run(t, opts, "note", "2026-03-10", "channels", "are", "pipes")
	require.NoError(t, err)
	assert.Contains(t, out, "note for 2026-03-10 saved")

	out, err = run(t, opts, "note", "2026-03-10")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted")

	_, err = run(t, opts, "note")
	assert.Error(t, err)

	out, err = run(t, opts, "goals", "--toggle", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Week 4 goals (20%)")

	_, err = run(t, opts, "goals", "--week", "70")
	assert.Error(t, err)
}

func TestArticles(t *testing.T) {
	opts := newTestOptions(t, fixedNow)

	out, err := run(t, opts, "articles")
	require.NoError(t, err)
	assert.Contains(t, out, "Articles (3)")
	assert.Contains(t, out, "2026-02-22  Week 1: micrograd and neural network basics")

	out, err = run(t, opts, "articles", "dsa-strategies")
	require.NoError(t, err)
	assert.Contains(t, out, "Strategies for solving DSA problems")
	assert.Contains(t, out, "**two pointers**")

	out, err = run(t, opts, "articles", "week1-reflection", "--html")
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")

	_, err = run(t, opts, "articles", "missing")
	assert.ErrorIs(t, err, domain.ErrArticleNotFound)
}

func TestLogBeforeProgramStart(t *testing.T) {
	opts := newTestOptions(t, time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC))

	_, err := run(t, opts, "log")
	assert.ErrorIs(t, err, domain.ErrProgramNotStarted)
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "░░░░", stripped(progressBar(0, 4)))
	assert.Equal(t, "██░░", stripped(progressBar(50, 4)))
	assert.Equal(t, "████", stripped(progressBar(150, 4)))
}
