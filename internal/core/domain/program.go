package domain

import (
	"errors"
	"math"
	"time"
)

const (
	DefaultProgramStart = "2026-02-16"
	DefaultTotalWeeks   = 65
)

var (
	ErrInvalidProgram    = errors.New("invalid program (start date required, total weeks must be positive)")
	ErrProgramNotStarted = errors.New("date is before the program start")
)

// Program is the fixed-length study plan the tracker follows. All calendar
// arithmetic happens on start-of-day instants in Location.
type Program struct {
	Start      time.Time
	TotalWeeks int
	Location   *time.Location
}

func NewProgram(start string, totalWeeks int, loc *time.Location) (Program, error) {
	if loc == nil {
		loc = time.Local
	}
	if totalWeeks <= 0 {
		return Program{}, ErrInvalidProgram
	}
	s, err := ParseDate(start, loc)
	if err != nil {
		return Program{}, ErrInvalidProgram
	}
	return Program{Start: s, TotalWeeks: totalWeeks, Location: loc}, nil
}

func (p Program) today(now time.Time) time.Time {
	if p.Location != nil {
		now = now.In(p.Location)
	}
	return StartOfDay(now)
}

func (p Program) start() time.Time {
	if p.Location != nil {
		return StartOfDay(p.Start.In(p.Location))
	}
	return StartOfDay(p.Start)
}

// IsActive reports whether now falls on or after the program's first day.
func (p Program) IsActive(now time.Time) bool {
	return DaysBetween(p.start(), p.today(now)) >= 0
}

func (p Program) DaysUntilStart(now time.Time) int {
	if p.IsActive(now) {
		return 0
	}
	return DaysBetween(p.today(now), p.start())
}

// DaysIntoProgram counts the first day as day 1.
func (p Program) DaysIntoProgram(now time.Time) int {
	if !p.IsActive(now) {
		return 0
	}
	return DaysBetween(p.start(), p.today(now)) + 1
}

// CurrentWeek is 1-based and clamped to TotalWeeks; 0 before the start.
func (p Program) CurrentWeek(now time.Time) int {
	if !p.IsActive(now) {
		return 0
	}
	weeksElapsed := DaysBetween(p.start(), p.today(now)) / 7
	return min(max(weeksElapsed+1, 1), p.TotalWeeks)
}

func (p Program) TotalDays() int {
	return p.TotalWeeks * 7
}

func ProgressPercent(week, totalWeeks int) float64 {
	if week <= 0 || totalWeeks <= 0 {
		return 0
	}
	return math.Min(float64(week)/float64(totalWeeks)*100, 100)
}

type ProgramStatus struct {
	Active          bool    `json:"active"`
	StartDate       string  `json:"start_date"`
	TotalWeeks      int     `json:"total_weeks"`
	TotalDays       int     `json:"total_days"`
	DaysUntilStart  int     `json:"days_until_start"`
	DaysIntoProgram int     `json:"days_into_program"`
	CurrentWeek     int     `json:"current_week"`
	ProgressPercent float64 `json:"progress_percent"`
}

func (p Program) Status(now time.Time) ProgramStatus {
	week := p.CurrentWeek(now)
	return ProgramStatus{
		Active:          p.IsActive(now),
		StartDate:       FormatDate(p.start()),
		TotalWeeks:      p.TotalWeeks,
		TotalDays:       p.TotalDays(),
		DaysUntilStart:  p.DaysUntilStart(now),
		DaysIntoProgram: p.DaysIntoProgram(now),
		CurrentWeek:     week,
		ProgressPercent: ProgressPercent(week, p.TotalWeeks),
	}
}
