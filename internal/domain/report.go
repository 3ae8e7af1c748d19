package domain

import (
	"fmt"
	"sort"
	"time"
)

// CategoryWeek summarizes one category over a report week.
type CategoryWeek struct {
	CategoryID     string  `json:"categoryId"`
	Title          string  `json:"title"`
	Hours          float64 `json:"hours"`
	GoalsSet       int     `json:"goalsSet"`
	GoalsCompleted int     `json:"goalsCompleted"`
}

type ReportEvent struct {
	Date      string    `json:"date"`
	Title     string    `json:"title"`
	Type      EventType `json:"type"`
	Completed bool      `json:"completed"`
}

type ReportReflection struct {
	Date string `json:"date"`
	Text string `json:"text"`
}

// WeeklyReport is the derived summary for one ISO week. It is a plain
// aggregation over the log documents; rendering (PDF or otherwise) is
// left to consumers.
type WeeklyReport struct {
	Week        string             `json:"week"`
	Start       string             `json:"start"`
	End         string             `json:"end"`
	Categories  []CategoryWeek     `json:"categories"`
	HabitsDone  int                `json:"habitsDone"`
	HabitSlots  int                `json:"habitSlots"`
	Conquered   int                `json:"antiGoalsConquered"`
	Succumbed   int                `json:"antiGoalsSuccumbed"`
	Events      []ReportEvent      `json:"events"`
	Reflections []ReportReflection `json:"reflections"`
	Streak      int                `json:"streak"`
}

// ParseISOWeek parses "2025-W35" into its ISO year and week number.
func ParseISOWeek(s string) (year, week int, err error) {
	if _, err := fmt.Sscanf(s, "%d-W%d", &year, &week); err != nil {
		return 0, 0, fmt.Errorf("invalid week %q, want YYYY-Www: %w", s, err)
	}
	if week < 1 || week > 53 {
		return 0, 0, fmt.Errorf("invalid week number %d", week)
	}
	return year, week, nil
}

// FormatISOWeek formats the ISO week containing the given instant.
func FormatISOWeek(now time.Time) string {
	year, week := now.In(IST).ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// BuildWeeklyReport aggregates the Monday..Sunday span of the given ISO
// week. The streak is the current one, computed against now, since the
// report page always shows the live counter next to the summary.
func BuildWeeklyReport(logs []DailyLog, cfg UserConfig, year, week int, now time.Time) WeeklyReport {
	start := WeekStart(year, week)
	end := start.AddDate(0, 0, 6)
	startDate := start.Format(DateLayout)
	endDate := end.Format(DateLayout)

	report := WeeklyReport{
		Week:        fmt.Sprintf("%d-W%02d", year, week),
		Start:       startDate,
		End:         endDate,
		Events:      []ReportEvent{},
		Reflections: []ReportReflection{},
		Streak:      Streak(logs, now),
	}

	cats := make([]CategoryWeek, len(cfg.Categories))
	index := make(map[string]int, len(cfg.Categories))
	for i, def := range cfg.Categories {
		cats[i] = CategoryWeek{CategoryID: def.ID, Title: def.Title}
		index[def.ID] = i
	}

	habitByID := make(map[string]HabitDef, len(cfg.Habits))
	for _, h := range cfg.Habits {
		habitByID[h.ID] = h
	}

	for _, log := range logs {
		if log.Date < startDate || log.Date > endDate {
			continue
		}
		hydrated := Hydrate(log, cfg)

		for id, cat := range hydrated.Categories {
			i, ok := index[id]
			if !ok {
				continue
			}
			if cat.Hours > 0 {
				cats[i].Hours += cat.Hours
			}
			cats[i].GoalsSet += len(cat.Goals)
			for _, st := range cat.GoalStatus {
				if st == GoalCompleted {
					cats[i].GoalsCompleted++
				}
			}
		}

		for id, done := range hydrated.Habits {
			habit, ok := habitByID[id]
			if !ok {
				continue
			}
			if habit.CreatedAt != "" && habit.CreatedAt > log.Date {
				continue
			}
			report.HabitSlots++
			if done {
				report.HabitsDone++
			}
		}

		for _, st := range hydrated.AntiGoals {
			switch st {
			case AntiGoalConquered:
				report.Conquered++
			case AntiGoalSuccumbed:
				report.Succumbed++
			}
		}

		for _, ev := range hydrated.Events {
			report.Events = append(report.Events, ReportEvent{
				Date:      log.Date,
				Title:     ev.Title,
				Type:      ev.Type,
				Completed: ev.Completed,
			})
		}

		if hydrated.Reflection != "" {
			report.Reflections = append(report.Reflections, ReportReflection{
				Date: log.Date,
				Text: hydrated.Reflection,
			})
		}
	}

	// The repository returns logs in no particular order.
	sort.Slice(report.Events, func(i, j int) bool {
		return report.Events[i].Date < report.Events[j].Date
	})
	sort.Slice(report.Reflections, func(i, j int) bool {
		return report.Reflections[i].Date < report.Reflections[j].Date
	})

	report.Categories = cats
	return report
}
