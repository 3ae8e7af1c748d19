package domain

import "time"

// CategoryTotals holds the hour sums for one category over the three
// reference buckets: the IST day, ISO week and calendar month of "now".
type CategoryTotals struct {
	CategoryID string  `json:"categoryId"`
	Title      string  `json:"title"`
	Today      float64 `json:"today"`
	Week       float64 `json:"week"`
	Month      float64 `json:"month"`
}

// HourTotals computes per-category hour sums over the full log history.
// Categories added after a log was written contribute zero for it, and
// logs with unparseable dates are skipped rather than failing the whole
// aggregate.
func HourTotals(logs []DailyLog, cfg UserConfig, now time.Time) []CategoryTotals {
	ref := now.In(IST)
	today := ref.Format(DateLayout)
	refYear, refWeek := ref.ISOWeek()

	totals := make([]CategoryTotals, len(cfg.Categories))
	index := make(map[string]int, len(cfg.Categories))
	for i, def := range cfg.Categories {
		totals[i] = CategoryTotals{CategoryID: def.ID, Title: def.Title}
		index[def.ID] = i
	}

	for _, log := range logs {
		t, err := ParseDate(log.Date)
		if err != nil {
			continue
		}
		year, week := t.ISOWeek()
		sameWeek := year == refYear && week == refWeek
		sameMonth := t.Year() == ref.Year() && t.Month() == ref.Month()
		sameDay := log.Date == today

		if !sameDay && !sameWeek && !sameMonth {
			continue
		}
		for id, cat := range log.Categories {
			i, ok := index[id]
			if !ok || cat.Hours <= 0 {
				continue
			}
			if sameDay {
				totals[i].Today += cat.Hours
			}
			if sameWeek {
				totals[i].Week += cat.Hours
			}
			if sameMonth {
				totals[i].Month += cat.Hours
			}
		}
	}
	return totals
}

// Streak counts consecutive active days ending at or just before today.
// Today is counted when it is active, but an inactive or still-unlogged
// today does not break a chain it was never part of: the backward walk
// simply starts at yesterday. A day with no log document at all breaks
// the chain the same as an inactive one.
func Streak(logs []DailyLog, now time.Time) int {
	byDate := make(map[string]DailyLog, len(logs))
	for _, log := range logs {
		byDate[log.Date] = log
	}

	today := Today(now)
	count := 0
	if log, ok := byDate[today]; ok && log.IsActive() {
		count++
	}
	for date := AddDays(today, -1); ; date = AddDays(date, -1) {
		log, ok := byDate[date]
		if !ok || !log.IsActive() {
			break
		}
		count++
	}
	return count
}
