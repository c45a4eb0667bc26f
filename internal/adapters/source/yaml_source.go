package source

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/comitanigiacomo/deepstack-engine/internal/core/domain"
)

//go:embed default_plan.yaml
var defaultPlan []byte

var ErrInvalidPlan = errors.New("invalid plan document")

type planDocument struct {
	Slots   []map[string]string   `yaml:"slots"`
	Roadmap []domain.RoadmapEntry `yaml:"roadmap"`
}

// YAMLSource reads the daily slots and the roadmap from a YAML file, or
// from the plan compiled into the binary when Path is empty.
type YAMLSource struct {
	Path string
}

func NewYAMLSource(path string) *YAMLSource {
	return &YAMLSource{Path: path}
}

func (s *YAMLSource) Load(ctx context.Context) (*domain.Schedule, []domain.RoadmapEntry, error) {
	data := defaultPlan
	if s.Path != "" {
		raw, err := os.ReadFile(s.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("read plan %s: %w", s.Path, err)
		}
		data = raw
	}
	return Parse(data)
}

// Parse decodes a plan document. Rows without a time (slots) or a week
// label (roadmap) are skipped.
func Parse(data []byte) (*domain.Schedule, []domain.RoadmapEntry, error) {
	var doc planDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}

	slots := make([]domain.ScheduleSlot, 0, len(doc.Slots))
	for i, row := range doc.Slots {
		slot, ok, err := parseSlot(row)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: slot %d: %v", ErrInvalidPlan, i+1, err)
		}
		if ok {
			slots = append(slots, slot)
		}
	}

	schedule, err := domain.NewSchedule(slots)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}

	roadmap := make([]domain.RoadmapEntry, 0, len(doc.Roadmap))
	for _, e := range doc.Roadmap {
		if strings.TrimSpace(e.Week) == "" {
			continue
		}
		roadmap = append(roadmap, e)
	}
	return schedule, roadmap, nil
}

func parseSlot(row map[string]string) (domain.ScheduleSlot, bool, error) {
	slot := domain.ScheduleSlot{Activities: make(map[time.Weekday]string)}
	for key, value := range row {
		if strings.EqualFold(strings.TrimSpace(key), "time") {
			slot.Time = strings.TrimSpace(value)
			continue
		}
		day, err := domain.ParseWeekday(key)
		if err != nil {
			return domain.ScheduleSlot{}, false, err
		}
		slot.Activities[day] = strings.TrimSpace(value)
	}
	return slot, slot.Time != "", nil
}
