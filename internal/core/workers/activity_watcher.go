package workers

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/comitanigiacomo/deepstack-engine/internal/core/domain"
	"github.com/comitanigiacomo/deepstack-engine/internal/core/services"
)

// ActivityResolver reads the schedule and reminder clock times in the
// program's time zone.
type ActivityResolver interface {
	Current(now time.Time) services.CurrentActivity
	DueReminders(reminders []domain.Reminder, since, now time.Time) []domain.ReminderOccurrence
}

type SettingsReader interface {
	Get(ctx context.Context) domain.Settings
}

// Notifier delivers a reminder to the user.
type Notifier interface {
	Notify(ctx context.Context, occ domain.ReminderOccurrence) error
}

// ActivityWatcher re-derives the current schedule slot on every tick and
// fires reminders that came due since the previous tick.
type ActivityWatcher struct {
	resolver  ActivityResolver
	settings  SettingsReader
	notifier  Notifier
	reminders []domain.Reminder
	interval  time.Duration
	now       func() time.Time

	mu       sync.RWMutex
	current  services.CurrentActivity
	lastTick time.Time
}

func NewActivityWatcher(resolver ActivityResolver, settings SettingsReader, notifier Notifier, reminders []domain.Reminder, interval time.Duration) *ActivityWatcher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ActivityWatcher{
		resolver:  resolver,
		settings:  settings,
		notifier:  notifier,
		reminders: reminders,
		interval:  interval,
		now:       time.Now,
	}
}

func (w *ActivityWatcher) Start(ctx context.Context) {
	w.tick(ctx, w.now())

	go func() {
		log.Printf("[WATCHER] Activity watcher started, polling every %s", w.interval)
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.tick(ctx, w.now())
			case <-ctx.Done():
				log.Println("[WATCHER] Activity watcher shutting down...")
				return
			}
		}
	}()
}

// Current returns the activity seen on the latest tick.
func (w *ActivityWatcher) Current() services.CurrentActivity {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

func (w *ActivityWatcher) tick(ctx context.Context, now time.Time) {
	next := w.resolver.Current(now)

	w.mu.Lock()
	prev := w.current
	since := w.lastTick
	w.current = next
	w.lastTick = now
	w.mu.Unlock()

	if since.IsZero() || prev.Activity != next.Activity || prev.SlotIndex != next.SlotIndex {
		log.Printf("[WATCHER] Current activity: %q (slot %d)", next.Activity, next.SlotIndex)
	}

	// the first tick only sets the baseline
	if since.IsZero() || w.notifier == nil {
		return
	}
	if !w.settings.Get(ctx).NotificationsEnabled {
		return
	}
	for _, occ := range w.resolver.DueReminders(w.reminders, since, now) {
		if err := w.notifier.Notify(ctx, occ); err != nil {
			log.Printf("[WATCHER] Failed to deliver reminder %q: %v", occ.Title, err)
		}
	}
}
