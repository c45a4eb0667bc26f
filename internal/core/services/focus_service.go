package services

import (
	"context"
	"sync"
	"time"

	"github.com/comitanigiacomo/deepstack-engine/internal/core/domain"
)

type FocusService struct {
	store domain.Store
	loc   *time.Location
	mu    sync.Mutex
}

func NewFocusService(store domain.Store, loc *time.Location) *FocusService {
	if loc == nil {
		loc = time.Local
	}
	return &FocusService{
		store: store,
		loc:   loc,
	}
}

type CompletedFocus struct {
	Session      domain.FocusSession `json:"session"`
	BreakMinutes int                 `json:"break_minutes"`
}

func (s *FocusService) Modes() []domain.FocusMode {
	return domain.FocusModes()
}

func (s *FocusService) sessions(ctx context.Context) []domain.FocusSession {
	sessions, _ := loadJSON[[]domain.FocusSession](ctx, s.store, domain.KeyFocusSessions, nil)
	return sessions
}

// Complete appends a finished work block and reports the break that follows it.
func (s *FocusService) Complete(ctx context.Context, modeIndex int, now time.Time) (CompletedFocus, error) {
	mode, err := domain.FocusModeAt(modeIndex)
	if err != nil {
		return CompletedFocus{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session := domain.NewFocusSession(mode, now.In(s.loc))
	sessions := append(s.sessions(ctx), session)
	if err := saveJSON(ctx, s.store, domain.KeyFocusSessions, sessions); err != nil {
		return CompletedFocus{}, err
	}

	return CompletedFocus{Session: session, BreakMinutes: mode.BreakMinutes}, nil
}

func (s *FocusService) Today(ctx context.Context, now time.Time) domain.FocusSummary {
	return domain.SummarizeFocus(s.sessions(ctx), domain.FormatDate(now.In(s.loc)))
}
