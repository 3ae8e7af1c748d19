package domain

import (
	"reflect"
	"testing"
)

func TestHydrate_FillsMissingEntries(t *testing.T) {
	cfg := UserConfig{
		Categories: []CategoryDef{{ID: "research"}, {ID: "gate"}},
		AntiGoals:  []AntiGoalDef{{ID: "doomscroll"}},
		Habits:     []HabitDef{{ID: "sleep", CreatedAt: "2024-01-01"}},
	}
	log := DailyLog{
		Date: "2024-06-12",
		Categories: map[string]CategoryLog{
			"research": {Goals: []string{"a", "b"}, GoalStatus: []GoalStatus{GoalCompleted}, Hours: 2},
		},
	}

	got := Hydrate(log, cfg)

	research := got.Categories["research"]
	if want := []GoalStatus{GoalCompleted, GoalPending}; !reflect.DeepEqual(research.GoalStatus, want) {
		t.Errorf("GoalStatus padding: expected %v, got %v", want, research.GoalStatus)
	}
	gate, ok := got.Categories["gate"]
	if !ok {
		t.Fatal("expected gate category to be synthesized")
	}
	if gate.Hours != 0 || len(gate.Goals) != 0 {
		t.Errorf("synthesized category not empty: %+v", gate)
	}
	if st := got.AntiGoals["doomscroll"]; st != AntiGoalPending {
		t.Errorf("expected pending anti-goal, got %q", st)
	}
	if done, ok := got.Habits["sleep"]; !ok || done {
		t.Errorf("expected habit synthesized as not done, got ok=%v done=%v", ok, done)
	}
	if got.Events == nil {
		t.Error("expected events to default to empty slice")
	}
}

func TestHydrate_Idempotent(t *testing.T) {
	cfg := UserConfig{
		Categories: []CategoryDef{{ID: "research"}, {ID: "interview"}},
		AntiGoals:  []AntiGoalDef{{ID: "youtube"}},
		Habits:     []HabitDef{{ID: "run"}},
	}
	log := DailyLog{
		Date: "2024-06-12",
		Categories: map[string]CategoryLog{
			"research": {Goals: []string{"x"}, Hours: 1.5},
		},
		AntiGoals: map[string]AntiGoalStatus{"youtube": AntiGoalConquered},
		Habits:    map[string]bool{"run": true},
	}

	once := Hydrate(log, cfg)
	twice := Hydrate(once, cfg)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("hydration is not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestHydrate_DoesNotMutateInput(t *testing.T) {
	cfg := UserConfig{Categories: []CategoryDef{{ID: "research"}, {ID: "gate"}}}
	log := DailyLog{
		Date: "2024-06-12",
		Categories: map[string]CategoryLog{
			"research": {Goals: []string{"x"}},
		},
	}

	_ = Hydrate(log, cfg)

	if _, leaked := log.Categories["gate"]; leaked {
		t.Error("hydration mutated the stored document")
	}
}

func TestHydrate_SelfHealing(t *testing.T) {
	cfg := UserConfig{Categories: []CategoryDef{{ID: "research"}}}
	log := DailyLog{
		Date: "2024-06-12",
		Categories: map[string]CategoryLog{
			// Oversized status list and negative hours from a buggy
			// old client.
			"research": {
				Goals:      []string{"a"},
				GoalStatus: []GoalStatus{GoalCompleted, GoalProgress, GoalPending},
				Hours:      -2,
			},
		},
	}

	got := Hydrate(log, cfg).Categories["research"]
	if len(got.GoalStatus) != 1 {
		t.Errorf("expected GoalStatus trimmed to goal count, got %v", got.GoalStatus)
	}
	if got.Hours != 0 {
		t.Errorf("expected negative hours zeroed, got %v", got.Hours)
	}
}
