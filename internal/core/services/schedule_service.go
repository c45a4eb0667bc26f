package services

import (
	"context"
	"log"
	"time"

	"github.com/comitanigiacomo/deepstack-engine/internal/core/domain"
)

// ScheduleSource produces the daily slots and the weekly roadmap once at startup.
type ScheduleSource interface {
	Load(ctx context.Context) (*domain.Schedule, []domain.RoadmapEntry, error)
}

type ScheduleService struct {
	schedule *domain.Schedule
	roadmap  []domain.RoadmapEntry
	program  domain.Program
}

// NewScheduleService loads the source once. A failing source leaves the
// service with an empty schedule and roadmap.
func NewScheduleService(ctx context.Context, src ScheduleSource, program domain.Program) *ScheduleService {
	s := &ScheduleService{program: program}

	schedule, roadmap, err := src.Load(ctx)
	if err != nil {
		log.Printf("[SCHEDULE] Failed to load schedule data, starting empty: %v", err)
		schedule, _ = domain.NewSchedule(nil)
		roadmap = nil
	}
	s.schedule = schedule
	s.roadmap = roadmap
	return s
}

type CurrentActivity struct {
	Day       string `json:"day"`
	Time      string `json:"time"`
	Activity  string `json:"activity"`
	SlotIndex int    `json:"slot_index"`
}

type WeekPlanView struct {
	Week            int                   `json:"week"`
	TotalWeeks      int                   `json:"total_weeks"`
	ProgressPercent float64               `json:"progress_percent"`
	Topic           string                `json:"topic"`
	Entries         []domain.RoadmapEntry `json:"entries"`
}

func (s *ScheduleService) local(now time.Time) time.Time {
	if s.program.Location != nil {
		return now.In(s.program.Location)
	}
	return now
}

func (s *ScheduleService) Schedule() *domain.Schedule {
	return s.schedule
}

// Current resolves the activity planned for now.
func (s *ScheduleService) Current(now time.Time) CurrentActivity {
	now = s.local(now)
	clock := domain.ClockMinutes(now)

	idx, ok := s.schedule.SlotIndexAt(clock)
	if !ok {
		idx = -1
	}
	return CurrentActivity{
		Day:       now.Weekday().String(),
		Time:      now.Format("15:04:05"),
		Activity:  s.schedule.CurrentActivity(now.Weekday(), clock),
		SlotIndex: idx,
	}
}

// Today lists today's planned slots with past/current markers.
func (s *ScheduleService) Today(now time.Time) []domain.PlannedSlot {
	now = s.local(now)
	return s.schedule.DayPlan(now.Weekday(), domain.ClockMinutes(now))
}

func (s *ScheduleService) CurrentWeekPlan(now time.Time) WeekPlanView {
	week := s.program.CurrentWeek(now)
	plan := domain.WeekPlan(s.roadmap, week)
	if plan == nil {
		plan = []domain.RoadmapEntry{}
	}
	return WeekPlanView{
		Week:            week,
		TotalWeeks:      s.program.TotalWeeks,
		ProgressPercent: domain.ProgressPercent(week, s.program.TotalWeeks),
		Topic:           domain.TodaysTopic(plan),
		Entries:         plan,
	}
}

// NextReminder finds the next reminder with clock times read in the
// program's time zone.
func (s *ScheduleService) NextReminder(reminders []domain.Reminder, now time.Time) (domain.ReminderOccurrence, bool) {
	return domain.NextReminder(reminders, s.local(now))
}

// DueReminders lists reminders in (since, now] in the program's time zone.
func (s *ScheduleService) DueReminders(reminders []domain.Reminder, since, now time.Time) []domain.ReminderOccurrence {
	return domain.DueReminders(reminders, s.local(since), s.local(now))
}
