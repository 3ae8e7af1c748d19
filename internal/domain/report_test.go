package domain

import "testing"

func TestBuildWeeklyReport(t *testing.T) {
	cfg := UserConfig{
		Categories: []CategoryDef{
			{ID: "research", Title: "Research Progress"},
			{ID: "gate", Title: "GATE Preparation"},
		},
		AntiGoals: []AntiGoalDef{{ID: "youtube"}},
		Habits:    []HabitDef{{ID: "sleep", CreatedAt: "2024-06-11"}},
	}

	inWeek := DailyLog{
		Date: "2024-06-11",
		Categories: map[string]CategoryLog{
			"research": {
				Goals:      []string{"draft intro", "read paper"},
				GoalStatus: []GoalStatus{GoalCompleted, GoalPending},
				Hours:      3,
			},
		},
		Rating:     4,
		Reflection: "solid day",
		Events: []CalendarEvent{
			{ID: "e1", Title: "lab meeting", Type: EventWorkshop, Completed: true},
		},
		AntiGoals: map[string]AntiGoalStatus{"youtube": AntiGoalConquered},
		Habits:    map[string]bool{"sleep": true},
	}
	alsoInWeek := DailyLog{
		Date: "2024-06-12",
		Categories: map[string]CategoryLog{
			"gate": {Goals: []string{"mock test"}, GoalStatus: []GoalStatus{GoalCompleted}, Hours: 2},
		},
		AntiGoals: map[string]AntiGoalStatus{"youtube": AntiGoalSuccumbed},
	}
	outsideWeek := DailyLog{
		Date: "2024-06-03",
		Categories: map[string]CategoryLog{
			"research": {Hours: 99},
		},
	}

	report := BuildWeeklyReport([]DailyLog{alsoInWeek, inWeek, outsideWeek}, cfg, 2024, 24, refNow)

	if report.Week != "2024-W24" || report.Start != "2024-06-10" || report.End != "2024-06-16" {
		t.Errorf("wrong week span: %s %s..%s", report.Week, report.Start, report.End)
	}

	research := report.Categories[0]
	if research.Hours != 3 || research.GoalsSet != 2 || research.GoalsCompleted != 1 {
		t.Errorf("research summary wrong: %+v", research)
	}
	gate := report.Categories[1]
	if gate.Hours != 2 || gate.GoalsCompleted != 1 {
		t.Errorf("gate summary wrong: %+v", gate)
	}

	// The habit applies on 2024-06-11 and 2024-06-12 (both logged).
	if report.HabitSlots != 2 || report.HabitsDone != 1 {
		t.Errorf("expected habits 1/2, got %d/%d", report.HabitsDone, report.HabitSlots)
	}
	if report.Conquered != 1 || report.Succumbed != 1 {
		t.Errorf("anti-goal counts wrong: conquered=%d succumbed=%d", report.Conquered, report.Succumbed)
	}

	if len(report.Events) != 1 || report.Events[0].Title != "lab meeting" {
		t.Errorf("events wrong: %+v", report.Events)
	}
	if len(report.Reflections) != 1 || report.Reflections[0].Date != "2024-06-11" {
		t.Errorf("reflections wrong: %+v", report.Reflections)
	}
}

func TestBuildWeeklyReport_EmptyWeek(t *testing.T) {
	cfg := UserConfig{Categories: []CategoryDef{{ID: "research", Title: "Research Progress"}}}

	report := BuildWeeklyReport(nil, cfg, 2024, 20, refNow)

	if len(report.Categories) != 1 {
		t.Fatalf("expected category skeleton even for empty week, got %d", len(report.Categories))
	}
	if report.Categories[0].Hours != 0 {
		t.Errorf("expected zero hours, got %v", report.Categories[0].Hours)
	}
	if report.Events == nil || report.Reflections == nil {
		t.Error("expected empty slices, not nil")
	}
}
