package domain

import (
	"sort"
	"strings"
	"time"
)

const DefaultActivityLabel = "Daily protocol"

// ActivityLogEntry records whether the program was completed on a calendar date.
type ActivityLogEntry struct {
	Date      string `json:"date"`
	Activity  string `json:"activity"`
	Completed bool   `json:"completed"`
	Timestamp int64  `json:"timestamp"`
}

func NewActivityLogEntry(date string, completed bool, now time.Time) ActivityLogEntry {
	return ActivityLogEntry{
		Date:      date,
		Activity:  DefaultActivityLabel,
		Completed: completed,
		Timestamp: now.UnixMilli(),
	}
}

func (e ActivityLogEntry) Validate() error {
	if strings.TrimSpace(e.Date) == "" {
		return ErrInvalidDate
	}
	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// ActivityLog holds at most one entry per date.
type ActivityLog map[string]ActivityLogEntry

// NewActivityLog folds a persisted list into a log. When two entries share a
// date the one with the greater Timestamp wins; on equal timestamps the later
// list position wins.
func NewActivityLog(entries []ActivityLogEntry) ActivityLog {
	log := make(ActivityLog, len(entries))
	for _, e := range entries {
		if existing, ok := log[e.Date]; ok && existing.Timestamp > e.Timestamp {
			continue
		}
		log[e.Date] = e
	}
	return log
}

// Upsert replaces whatever was stored for the entry's date.
func (l ActivityLog) Upsert(e ActivityLogEntry) {
	l[e.Date] = e
}

func (l ActivityLog) IsCompleted(date string) bool {
	e, ok := l[date]
	return ok && e.Completed
}

func (l ActivityLog) CompletedCount() int {
	n := 0
	for _, e := range l {
		if e.Completed {
			n++
		}
	}
	return n
}

// Entries flattens the log for persistence, ordered by date.
func (l ActivityLog) Entries() []ActivityLogEntry {
	out := make([]ActivityLogEntry, 0, len(l))
	for _, e := range l {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

func (l ActivityLog) completed() []ActivityLogEntry {
	out := make([]ActivityLogEntry, 0, len(l))
	for _, e := range l {
		if e.Completed {
			out = append(out, e)
		}
	}
	return out
}
