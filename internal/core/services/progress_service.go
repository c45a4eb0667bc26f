package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/comitanigiacomo/deepstack-engine/internal/core/domain"
)

// ProgressService owns the activity log. Writes are read-modify-write cycles
// over the whole collection and are serialized by mu.
type ProgressService struct {
	store   domain.Store
	program domain.Program
	mu      sync.Mutex
}

func NewProgressService(store domain.Store, program domain.Program) *ProgressService {
	return &ProgressService{
		store:   store,
		program: program,
	}
}

func (s *ProgressService) local(now time.Time) time.Time {
	if s.program.Location != nil {
		return now.In(s.program.Location)
	}
	return now
}

func (s *ProgressService) readLog(ctx context.Context) domain.ActivityLog {
	entries, _ := loadJSON[[]domain.ActivityLogEntry](ctx, s.store, domain.KeyActivityLogs, nil)

	valid := entries[:0]
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			log.Printf("[STORE] Skipping activity log entry with bad date %q", e.Date)
			continue
		}
		valid = append(valid, e)
	}
	return domain.NewActivityLog(valid)
}

// Logs returns the de-duplicated activity log ordered by date.
func (s *ProgressService) Logs(ctx context.Context) []domain.ActivityLogEntry {
	return s.readLog(ctx).Entries()
}

// ToggleToday flips today's completion flag. Nothing can be logged before
// the program's first day.
func (s *ProgressService) ToggleToday(ctx context.Context, now time.Time) (domain.ActivityLogEntry, error) {
	now = s.local(now)
	if !s.program.IsActive(now) {
		return domain.ActivityLogEntry{}, domain.ErrProgramNotStarted
	}
	today := domain.FormatDate(now)

	s.mu.Lock()
	defer s.mu.Unlock()

	logs := s.readLog(ctx)
	entry := domain.NewActivityLogEntry(today, !logs.IsCompleted(today), now)
	logs.Upsert(entry)

	if err := saveJSON(ctx, s.store, domain.KeyActivityLogs, logs.Entries()); err != nil {
		return domain.ActivityLogEntry{}, err
	}
	return entry, nil
}

// SetDay records completion for a date between the program start and today. A past
// date is stamped with the last instant of that day so write order keeps
// following date order for the streak scans.
func (s *ProgressService) SetDay(ctx context.Context, date string, completed bool, now time.Time) (domain.ActivityLogEntry, error) {
	now = s.local(now)

	day, err := domain.ParseDate(date, now.Location())
	if err != nil {
		return domain.ActivityLogEntry{}, err
	}
	if day.After(domain.StartOfDay(now)) {
		return domain.ActivityLogEntry{}, domain.ErrFutureDate
	}
	if !s.program.IsActive(day) {
		return domain.ActivityLogEntry{}, domain.ErrProgramNotStarted
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stamp := now
	if endOfDay := day.AddDate(0, 0, 1).Add(-time.Millisecond); endOfDay.Before(now) {
		stamp = endOfDay
	}

	logs := s.readLog(ctx)
	entry := domain.NewActivityLogEntry(domain.FormatDate(day), completed, stamp)
	logs.Upsert(entry)

	if err := saveJSON(ctx, s.store, domain.KeyActivityLogs, logs.Entries()); err != nil {
		return domain.ActivityLogEntry{}, err
	}
	return entry, nil
}

func (s *ProgressService) Stats(ctx context.Context, now time.Time) domain.Overview {
	return domain.ComputeOverview(s.Logs(ctx), s.local(now))
}

func (s *ProgressService) Achievements(ctx context.Context, now time.Time) []domain.Achievement {
	return domain.EvaluateAchievements(s.Logs(ctx), s.local(now))
}

func (s *ProgressService) Program(now time.Time) domain.ProgramStatus {
	return s.program.Status(now)
}
