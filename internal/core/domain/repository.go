package domain

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrKeyNotFound = errors.New("key not found")
)

const (
	KeyActivityLogs  = "@deepstack_logs"
	KeyFocusSessions = "@deepstack_focus_sessions"
	KeyDailyNotes    = "@deepstack_daily_notes"
	KeySettings      = "@deepstack_settings"

	keyWeeklyGoalsPrefix = "@deepstack_weekly_goals"
)

// WeeklyGoalsKey is the storage key holding the goals of one program week.
func WeeklyGoalsKey(week int) string {
	return fmt.Sprintf("%s_week_%d", keyWeeklyGoalsPrefix, week)
}

// Store is the on-device key/value persistence. Every value is a whole
// collection serialized as one JSON document.
type Store interface {
	// Get returns the raw document stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the document stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Clear removes every key.
	Clear(ctx context.Context) error
}

// Pinger is implemented by stores backed by a remote server.
type Pinger interface {
	Ping(ctx context.Context) error
}
