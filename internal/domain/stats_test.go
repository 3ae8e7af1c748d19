package domain

import (
	"math"
	"testing"
	"time"
)

// refNow is Wednesday 2024-06-12 noon IST. ISO week 2024-W24 runs
// Mon 2024-06-10 .. Sun 2024-06-16.
var refNow = time.Date(2024, 6, 12, 12, 0, 0, 0, IST)

func logWithHours(date string, hours map[string]float64) DailyLog {
	log := NewDailyLog(date)
	for id, h := range hours {
		log.Categories[id] = CategoryLog{Hours: h}
	}
	return log
}

func activeLog(date string) DailyLog {
	return logWithHours(date, map[string]float64{"research": 1})
}

func TestHourTotals(t *testing.T) {
	cfg := UserConfig{Categories: []CategoryDef{
		{ID: "research", Title: "Research Progress"},
		{ID: "gate", Title: "GATE Preparation"},
	}}

	logs := []DailyLog{
		logWithHours("2024-06-12", map[string]float64{"research": 2.5, "gate": 1}), // today
		logWithHours("2024-06-10", map[string]float64{"research": 3}),              // same ISO week, same month
		logWithHours("2024-06-16", map[string]float64{"gate": 4}),                  // Sunday of same ISO week
		logWithHours("2024-06-03", map[string]float64{"research": 8}),              // same month only
		logWithHours("2024-05-30", map[string]float64{"research": 100}),            // outside all buckets
		logWithHours("2024-06-11", map[string]float64{"vanished": 2}),              // category no longer configured
	}

	totals := HourTotals(logs, cfg, refNow)
	if len(totals) != 2 {
		t.Fatalf("expected 2 category totals, got %d", len(totals))
	}

	research, gate := totals[0], totals[1]
	assertFloatNear(t, "research.Today", 2.5, research.Today)
	assertFloatNear(t, "research.Week", 5.5, research.Week)
	assertFloatNear(t, "research.Month", 13.5, research.Month)
	assertFloatNear(t, "gate.Today", 1, gate.Today)
	assertFloatNear(t, "gate.Week", 5, gate.Week)
	assertFloatNear(t, "gate.Month", 5, gate.Month)
}

func TestHourTotals_NeverNegative(t *testing.T) {
	cfg := UserConfig{Categories: []CategoryDef{{ID: "research"}}}
	logs := []DailyLog{
		logWithHours("2024-06-12", map[string]float64{"research": -3}),
	}

	for _, tot := range HourTotals(logs, cfg, refNow) {
		if tot.Today < 0 || tot.Week < 0 || tot.Month < 0 {
			t.Errorf("negative total for %s: %+v", tot.CategoryID, tot)
		}
	}
}

func TestHourTotals_CategoryAddedLater(t *testing.T) {
	// A category configured after historical logs were written must
	// report zero, not blow up.
	cfg := UserConfig{Categories: []CategoryDef{{ID: "research"}, {ID: "newcat"}}}
	logs := []DailyLog{logWithHours("2024-06-12", map[string]float64{"research": 2})}

	totals := HourTotals(logs, cfg, refNow)
	if totals[1].Today != 0 || totals[1].Week != 0 || totals[1].Month != 0 {
		t.Errorf("expected zero totals for late-added category, got %+v", totals[1])
	}
}

func TestHourTotals_ISOWeekBucketing(t *testing.T) {
	// A Sunday and the preceding Monday share the same Mon-start ISO week.
	monday := "2024-06-10"
	sunday := "2024-06-16"

	my, mw, ok := ISOWeekOf(monday)
	if !ok {
		t.Fatalf("failed to parse %s", monday)
	}
	sy, sw, ok := ISOWeekOf(sunday)
	if !ok {
		t.Fatalf("failed to parse %s", sunday)
	}
	if my != sy || mw != sw {
		t.Errorf("expected same ISO week, got %d-W%d vs %d-W%d", my, mw, sy, sw)
	}

	// Week 1 is the week containing the year's first Thursday:
	// 2021-01-01 (Friday) belongs to 2020-W53.
	y, w, _ := ISOWeekOf("2021-01-01")
	if y != 2020 || w != 53 {
		t.Errorf("2021-01-01: expected 2020-W53, got %d-W%d", y, w)
	}
}

func TestStreak(t *testing.T) {
	today := Today(refNow)
	day := func(offset int) string { return AddDays(today, offset) }

	tests := []struct {
		name     string
		logs     []DailyLog
		expected int
	}{
		{
			name:     "no logs",
			logs:     nil,
			expected: 0,
		},
		{
			name:     "today only",
			logs:     []DailyLog{activeLog(day(0))},
			expected: 1,
		},
		{
			name: "three days ending today, older gap",
			logs: []DailyLog{
				activeLog(day(0)), activeLog(day(-1)), activeLog(day(-2)),
				// day(-3) missing
				activeLog(day(-4)),
			},
			expected: 3,
		},
		{
			name: "gap breaks chain even with older active days",
			logs: []DailyLog{
				activeLog(day(0)),
				// day(-1) missing
				activeLog(day(-2)), activeLog(day(-3)),
			},
			expected: 1,
		},
		{
			name: "today missing does not break the chain",
			logs: []DailyLog{
				activeLog(day(-1)), activeLog(day(-2)),
			},
			expected: 2,
		},
		{
			name: "today inactive does not break the chain",
			logs: []DailyLog{
				NewDailyLog(day(0)),
				activeLog(day(-1)), activeLog(day(-2)),
			},
			expected: 2,
		},
		{
			name: "inactive yesterday ends the walk",
			logs: []DailyLog{
				activeLog(day(0)),
				NewDailyLog(day(-1)),
				activeLog(day(-2)),
			},
			expected: 1,
		},
		{
			name: "rating alone marks a day active",
			logs: []DailyLog{
				{Date: day(0), Rating: 4},
				activeLog(day(-1)),
			},
			expected: 2,
		},
		{
			name: "goal progress alone marks a day active",
			logs: []DailyLog{
				{Date: day(0), Categories: map[string]CategoryLog{
					"research": {Goals: []string{"read paper"}, GoalStatus: []GoalStatus{GoalProgress}},
				}},
			},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Streak(tt.logs, refNow); got != tt.expected {
				t.Errorf("expected streak %d, got %d", tt.expected, got)
			}
		})
	}
}

func assertFloatNear(t *testing.T, name string, expected, actual float64) {
	t.Helper()
	if math.Abs(expected-actual) > 0.0001 {
		t.Errorf("%s: expected %.6f, got %.6f", name, expected, actual)
	}
}
