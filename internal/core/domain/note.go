package domain

import (
	"errors"
	"sort"
	"strings"
	"time"
)

const MaxNoteLen = 5000

var ErrNoteTooLong = errors.New("note is too long (max 5000 chars)")

type DailyNote struct {
	Date      string `json:"date"`
	Note      string `json:"note"`
	Timestamp int64  `json:"timestamp"`
}

// UpsertNote replaces the note for date. A blank text removes it instead.
func UpsertNote(notes []DailyNote, date, text string, now time.Time) ([]DailyNote, error) {
	clean := strings.TrimSpace(text)
	if len(clean) > MaxNoteLen {
		return nil, ErrNoteTooLong
	}

	out := make([]DailyNote, 0, len(notes)+1)
	for _, n := range notes {
		if n.Date != date {
			out = append(out, n)
		}
	}
	if clean != "" {
		out = append(out, DailyNote{Date: date, Note: clean, Timestamp: now.UnixMilli()})
	}
	return out, nil
}

func FindNote(notes []DailyNote, date string) (DailyNote, bool) {
	for _, n := range notes {
		if n.Date == date {
			return n, true
		}
	}
	return DailyNote{}, false
}

// SortNotesRecentFirst orders notes by write time, newest first.
func SortNotesRecentFirst(notes []DailyNote) []DailyNote {
	out := make([]DailyNote, len(notes))
	copy(out, notes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})
	return out
}
