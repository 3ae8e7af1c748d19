package domain

import "time"

// heatmapWeeks is the grid height: 15 full weeks of history plus the
// week containing today.
const heatmapWeeks = 16

// Work intensity thresholds in hours. These are ordinal buckets, not a
// linear scale.
const (
	workLevelLow     = 0.0
	workLevelMid     = 2.0
	workLevelHigh    = 5.0
	workLevelIntense = 8.0
)

// WorkDay is one heatmap cell: total hours for the day bucketed into
// five ordinal levels (0..4).
type WorkDay struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
	Level int     `json:"level"`
}

// HabitState classifies a day's habit completion.
type HabitState string

const (
	// HabitNotConfigured marks days before any habit existed; it is
	// distinct from completing none of the habits that did apply.
	HabitNotConfigured HabitState = "not_configured"
	HabitNone          HabitState = "none"
	HabitPartial       HabitState = "partial"
	HabitFull          HabitState = "full"
)

// HabitDay is one habit-heatmap cell.
type HabitDay struct {
	Date       string     `json:"date"`
	Completed  int        `json:"completed"`
	Applicable int        `json:"applicable"`
	State      HabitState `json:"state"`
}

// HeatmapDates returns the window both heatmaps are drawn over: 112
// consecutive dates starting on a Sunday and ending on the Saturday
// on or after today, so the grid always splits into whole weeks.
func HeatmapDates(now time.Time) []string {
	today := now.In(IST)
	end := today.AddDate(0, 0, (6-int(today.Weekday()))%7)
	start := end.AddDate(0, 0, -(heatmapWeeks*7 - 1))

	dates := make([]string, 0, heatmapWeeks*7)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateLayout))
	}
	return dates
}

// WorkHeatmap buckets each day's total hours into intensity levels.
// Days without a log are level 0.
func WorkHeatmap(logs []DailyLog, now time.Time) []WorkDay {
	byDate := make(map[string]DailyLog, len(logs))
	for _, log := range logs {
		byDate[log.Date] = log
	}

	dates := HeatmapDates(now)
	grid := make([]WorkDay, len(dates))
	for i, date := range dates {
		var hours float64
		if log, ok := byDate[date]; ok {
			hours = log.HoursTotal()
		}
		grid[i] = WorkDay{Date: date, Hours: hours, Level: workLevel(hours)}
	}
	return grid
}

func workLevel(hours float64) int {
	switch {
	case hours > workLevelIntense:
		return 4
	case hours > workLevelHigh:
		return 3
	case hours > workLevelMid:
		return 2
	case hours > workLevelLow:
		return 1
	default:
		return 0
	}
}

// HabitHeatmap classifies each day against the habits that applied to
// it. A habit counts only from its CreatedAt date onward, so old days
// are never penalized for habits that did not exist yet.
func HabitHeatmap(logs []DailyLog, cfg UserConfig, now time.Time) []HabitDay {
	byDate := make(map[string]DailyLog, len(logs))
	for _, log := range logs {
		byDate[log.Date] = log
	}

	dates := HeatmapDates(now)
	grid := make([]HabitDay, len(dates))
	for i, date := range dates {
		day := HabitDay{Date: date}
		log, hasLog := byDate[date]
		for _, habit := range cfg.Habits {
			if habit.CreatedAt != "" && habit.CreatedAt > date {
				continue
			}
			day.Applicable++
			if hasLog && log.Habits[habit.ID] {
				day.Completed++
			}
		}
		day.State = habitState(day.Completed, day.Applicable)
		grid[i] = day
	}
	return grid
}

func habitState(completed, applicable int) HabitState {
	switch {
	case applicable == 0:
		return HabitNotConfigured
	case completed == 0:
		return HabitNone
	case completed == applicable:
		return HabitFull
	default:
		return HabitPartial
	}
}
