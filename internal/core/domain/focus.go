package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidFocusMode = errors.New("invalid focus mode")

const (
	FocusTypeDeepWork = "deep_work"
	FocusTypeDSA      = "dsa"
	FocusTypeTheory   = "theory"
)

// FocusMode is a work/break pairing, durations in minutes.
type FocusMode struct {
	Label        string `json:"label"`
	Type         string `json:"type"`
	WorkMinutes  int    `json:"work_minutes"`
	BreakMinutes int    `json:"break_minutes"`
}

var focusModes = []FocusMode{
	{Label: "Deep Work", Type: FocusTypeDeepWork, WorkMinutes: 50, BreakMinutes: 10},
	{Label: "DSA Sprint", Type: FocusTypeDSA, WorkMinutes: 25, BreakMinutes: 5},
	{Label: "Review", Type: FocusTypeTheory, WorkMinutes: 15, BreakMinutes: 3},
}

func FocusModes() []FocusMode {
	out := make([]FocusMode, len(focusModes))
	copy(out, focusModes)
	return out
}

func FocusModeAt(index int) (FocusMode, error) {
	if index < 0 || index >= len(focusModes) {
		return FocusMode{}, ErrInvalidFocusMode
	}
	return focusModes[index], nil
}

type FocusSession struct {
	ID             string `json:"id"`
	Date           string `json:"date"`
	Duration       int    `json:"duration"`
	TargetDuration int    `json:"target_duration"`
	Type           string `json:"type"`
	Timestamp      int64  `json:"timestamp"`
}

// NewFocusSession records a finished work block of mode at now.
func NewFocusSession(mode FocusMode, now time.Time) FocusSession {
	return FocusSession{
		ID:             uuid.NewString(),
		Date:           FormatDate(now),
		Duration:       mode.WorkMinutes,
		TargetDuration: mode.WorkMinutes,
		Type:           mode.Type,
		Timestamp:      now.UnixMilli(),
	}
}

type FocusSummary struct {
	Date     string `json:"date"`
	Sessions int    `json:"sessions"`
	Minutes  int    `json:"minutes"`
}

func SummarizeFocus(sessions []FocusSession, date string) FocusSummary {
	sum := FocusSummary{Date: date}
	for _, s := range sessions {
		if s.Date != date {
			continue
		}
		sum.Sessions++
		sum.Minutes += s.Duration
	}
	return sum
}
