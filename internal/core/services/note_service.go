package services

import (
	"context"
	"sync"
	"time"

	"github.com/comitanigiacomo/deepstack-engine/internal/core/domain"
)

type NoteService struct {
	store domain.Store
	loc   *time.Location
	mu    sync.Mutex
}

func NewNoteService(store domain.Store, loc *time.Location) *NoteService {
	if loc == nil {
		loc = time.Local
	}
	return &NoteService{
		store: store,
		loc:   loc,
	}
}

func (s *NoteService) notes(ctx context.Context) []domain.DailyNote {
	notes, _ := loadJSON[[]domain.DailyNote](ctx, s.store, domain.KeyDailyNotes, nil)
	return notes
}

// List returns every note, most recent date first.
func (s *NoteService) List(ctx context.Context) []domain.DailyNote {
	return domain.SortNotesRecentFirst(s.notes(ctx))
}

func (s *NoteService) Get(ctx context.Context, date string) (domain.DailyNote, bool) {
	return domain.FindNote(s.notes(ctx), date)
}

// Save writes the note for date. Blank text deletes it.
func (s *NoteService) Save(ctx context.Context, date, text string, now time.Time) (domain.DailyNote, error) {
	now = now.In(s.loc)
	day, err := domain.ParseDate(date, s.loc)
	if err != nil {
		return domain.DailyNote{}, err
	}
	if day.After(domain.StartOfDay(now)) {
		return domain.DailyNote{}, domain.ErrFutureDate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	date = domain.FormatDate(day)
	notes, err := domain.UpsertNote(s.notes(ctx), date, text, now)
	if err != nil {
		return domain.DailyNote{}, err
	}
	if err := saveJSON(ctx, s.store, domain.KeyDailyNotes, notes); err != nil {
		return domain.DailyNote{}, err
	}

	note, _ := domain.FindNote(notes, date)
	return note, nil
}
