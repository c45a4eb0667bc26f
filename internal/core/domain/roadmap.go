package domain

import (
	"fmt"
	"strings"
)

const noDSAPractice = "—"

// RoadmapEntry is one row of the weekly plan.
type RoadmapEntry struct {
	Week               string `json:"week" yaml:"week"`
	Phase              string `json:"phase" yaml:"phase"`
	Day                string `json:"day" yaml:"day"`
	TimeBlock          string `json:"time_block" yaml:"time_block"`
	Duration           string `json:"duration" yaml:"duration"`
	ActivityType       string `json:"activity_type" yaml:"activity_type"`
	Topic              string `json:"topic" yaml:"topic"`
	Resource           string `json:"resource" yaml:"resource"`
	PracticalExercise  string `json:"practical_exercise" yaml:"practical_exercise"`
	DSAPractice        string `json:"dsa_practice" yaml:"dsa_practice"`
	WeeklyMilestone    string `json:"weekly_milestone" yaml:"weekly_milestone"`
	CumulativeDSACount int    `json:"cumulative_dsa_count" yaml:"cumulative_dsa_count"`
}

func (e RoadmapEntry) HasDSAPractice() bool {
	p := strings.TrimSpace(e.DSAPractice)
	return p != "" && p != noDSAPractice
}

func WeekLabel(week int) string {
	return fmt.Sprintf("Week %d", week)
}

func WeekPlan(entries []RoadmapEntry, week int) []RoadmapEntry {
	label := WeekLabel(week)
	var out []RoadmapEntry
	for _, e := range entries {
		if strings.TrimSpace(e.Week) == label {
			out = append(out, e)
		}
	}
	return out
}

// TodaysTopic is the first topic planned for the week, "" when none.
func TodaysTopic(plan []RoadmapEntry) string {
	if len(plan) == 0 {
		return ""
	}
	return plan[0].Topic
}
