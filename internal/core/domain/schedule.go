package domain

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	MinutesPerDay = 24 * 60
	FreeTimeLabel = "Free time"
)

var (
	ErrInvalidClock   = errors.New("invalid clock time (must be HH:MM or HH:MM:SS)")
	ErrInvalidWeekday = errors.New("invalid weekday name")
)

var clockRegex = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):([0-5][0-9])(?::([0-5][0-9]))?$`)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func ParseWeekday(s string) (time.Weekday, error) {
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
	}
	return wd, nil
}

// ParseClock converts "HH:MM[:SS]" to minutes since midnight. Seconds are dropped.
func ParseClock(s string) (int, error) {
	m := clockRegex.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return hour*60 + minute, nil
}

// ClockMinutes is the minute-of-day of t in its own location.
func ClockMinutes(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

type ScheduleSlot struct {
	Time       string                  `json:"time"`
	Activities map[time.Weekday]string `json:"activities"`

	start int
}

// Activity returns the label for day; empty when nothing is planned.
func (s ScheduleSlot) Activity(day time.Weekday) string {
	return strings.TrimSpace(s.Activities[day])
}

func (s ScheduleSlot) StartMinutes() int {
	return s.start
}

// Schedule is a list of slots ordered by start time. Each slot runs until the
// next one starts; the last slot runs until midnight.
type Schedule struct {
	slots []ScheduleSlot
}

// NewSchedule validates slot times and orders slots by start time. Slots with
// equal start times keep their input order.
func NewSchedule(slots []ScheduleSlot) (*Schedule, error) {
	normalized := make([]ScheduleSlot, 0, len(slots))
	for _, s := range slots {
		start, err := ParseClock(s.Time)
		if err != nil {
			return nil, err
		}
		s.start = start
		if s.Activities == nil {
			s.Activities = map[time.Weekday]string{}
		}
		normalized = append(normalized, s)
	}
	sort.SliceStable(normalized, func(i, j int) bool {
		return normalized[i].start < normalized[j].start
	})
	return &Schedule{slots: normalized}, nil
}

func (s *Schedule) Slots() []ScheduleSlot {
	if s == nil {
		return nil
	}
	return s.slots
}

func (s *Schedule) Len() int {
	if s == nil {
		return 0
	}
	return len(s.slots)
}

func (s *Schedule) slotEnd(i int) int {
	if i+1 < len(s.slots) {
		return s.slots[i+1].start
	}
	return MinutesPerDay
}

// SlotIndexAt finds the slot whose half-open interval contains clock.
func (s *Schedule) SlotIndexAt(clock int) (int, bool) {
	for i := 0; i < s.Len(); i++ {
		if clock >= s.slots[i].start && clock < s.slotEnd(i) {
			return i, true
		}
	}
	return -1, false
}

// CurrentActivity resolves the label for day at clock. An empty label
// resolves to FreeTimeLabel; an empty schedule or a clock before the first
// slot resolves to "".
func (s *Schedule) CurrentActivity(day time.Weekday, clock int) string {
	i, ok := s.SlotIndexAt(clock)
	if !ok {
		return ""
	}
	if label := s.slots[i].Activity(day); label != "" {
		return label
	}
	return FreeTimeLabel
}

func (s *Schedule) IsCurrentSlot(index, clock int) bool {
	if index < 0 || index >= s.Len() {
		return false
	}
	return clock >= s.slots[index].start && clock < s.slotEnd(index)
}

func (s *Schedule) IsPastSlot(index, clock int) bool {
	if index < 0 || index >= s.Len() {
		return false
	}
	return clock >= s.slotEnd(index)
}

type PlannedSlot struct {
	Index    int    `json:"index"`
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Current  bool   `json:"current"`
	Past     bool   `json:"past"`
}

// DayPlan lists the slots with a planned activity on day, marked relative to clock.
func (s *Schedule) DayPlan(day time.Weekday, clock int) []PlannedSlot {
	plan := make([]PlannedSlot, 0, s.Len())
	for i, slot := range s.Slots() {
		label := slot.Activity(day)
		if label == "" {
			continue
		}
		display := slot.Time
		if len(display) > 5 {
			display = display[:5]
		}
		plan = append(plan, PlannedSlot{
			Index:    i,
			Time:     display,
			Activity: label,
			Current:  s.IsCurrentSlot(i, clock),
			Past:     s.IsPastSlot(i, clock),
		})
	}
	return plan
}
