package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/deepstack-engine/internal/core/domain"
	"github.com/comitanigiacomo/deepstack-engine/internal/core/services"
)

func TestFocusService(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Completed sessions add up for the day", func(t *testing.T) {
		store := NewFakeStore()
		svc := services.NewFocusService(store, time.UTC)

		done, err := svc.Complete(ctx, 0, testNow)
		require.NoError(t, err)
		assert.Equal(t, 10, done.BreakMinutes)
		assert.Equal(t, "deep_work", done.Session.Type)
		assert.NotEmpty(t, done.Session.ID)

		_, err = svc.Complete(ctx, 1, testNow.Add(time.Hour))
		require.NoError(t, err)
		_, err = svc.Complete(ctx, 2, testNow.AddDate(0, 0, -1))
		require.NoError(t, err)

		summary := svc.Today(ctx, testNow)
		assert.Equal(t, 2, summary.Sessions)
		assert.Equal(t, 75, summary.Minutes)

		var stored []domain.FocusSession
		store.decode(t, domain.KeyFocusSessions, &stored)
		assert.Len(t, stored, 3)
	})

	t.Run("Fail: Unknown mode", func(t *testing.T) {
		svc := services.NewFocusService(NewFakeStore(), time.UTC)

		_, err := svc.Complete(ctx, 3, testNow)
		assert.ErrorIs(t, err, domain.ErrInvalidFocusMode)
	})

	t.Run("Modes are listed in order", func(t *testing.T) {
		modes := services.NewFocusService(NewFakeStore(), nil).Modes()
		require.Len(t, modes, 3)
		assert.Equal(t, 50, modes[0].WorkMinutes)
	})
}
