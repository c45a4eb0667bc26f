package domain

import (
	"sort"
	"time"

	"github.com/teambition/rrule-go"
)

// Reminder is a notification repeated every day at Hour:Minute local time.
type Reminder struct {
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

type ReminderOccurrence struct {
	Reminder
	At time.Time `json:"at"`
}

func DefaultReminders() []Reminder {
	return []Reminder{
		{Hour: 7, Minute: 30, Title: "Wake up", Body: "Time to start the protocol."},
		{Hour: 8, Minute: 0, Title: "Deep work", Body: "Roadmap block started. Put the phone away!"},
		{Hour: 10, Minute: 30, Title: "Work block 1", Body: "Focus block started."},
		{Hour: 12, Minute: 15, Title: "Standup", Body: "Get ready for the meeting."},
		{Hour: 17, Minute: 0, Title: "Work block 2", Body: "Back to work."},
		{Hour: 20, Minute: 0, Title: "Gym", Body: "Time for some physical load."},
		{Hour: 23, Minute: 0, Title: "Sleep", Body: "Go to sleep. Rest is part of the work."},
	}
}

// rule anchors the daily recurrence on the day before ref so that any
// window around ref is covered.
func (r Reminder) rule(ref time.Time) (*rrule.RRule, error) {
	day := StartOfDay(ref).AddDate(0, 0, -1)
	return rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: time.Date(day.Year(), day.Month(), day.Day(), r.Hour, r.Minute, 0, 0, ref.Location()),
	})
}

// Next returns the first occurrence strictly after now.
func (r Reminder) Next(now time.Time) (time.Time, error) {
	rule, err := r.rule(now)
	if err != nil {
		return time.Time{}, err
	}
	return rule.After(now, false), nil
}

// Due lists occurrences in (since, now].
func (r Reminder) Due(since, now time.Time) ([]time.Time, error) {
	if !now.After(since) {
		return nil, nil
	}
	rule, err := r.rule(since)
	if err != nil {
		return nil, err
	}
	var out []time.Time
	for _, t := range rule.Between(since, now, true) {
		if t.After(since) {
			out = append(out, t)
		}
	}
	return out, nil
}

// NextReminder picks the earliest upcoming occurrence across reminders.
func NextReminder(reminders []Reminder, now time.Time) (ReminderOccurrence, bool) {
	var best ReminderOccurrence
	found := false
	for _, r := range reminders {
		at, err := r.Next(now)
		if err != nil || at.IsZero() {
			continue
		}
		if !found || at.Before(best.At) {
			best = ReminderOccurrence{Reminder: r, At: at}
			found = true
		}
	}
	return best, found
}

// DueReminders lists every occurrence in (since, now], oldest first.
func DueReminders(reminders []Reminder, since, now time.Time) []ReminderOccurrence {
	var out []ReminderOccurrence
	for _, r := range reminders {
		times, err := r.Due(since, now)
		if err != nil {
			continue
		}
		for _, at := range times {
			out = append(out, ReminderOccurrence{Reminder: r, At: at})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].At.Before(out[j].At)
	})
	return out
}
