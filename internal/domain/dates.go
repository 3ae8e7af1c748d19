package domain

import "time"

// IST is the fixed UTC+5:30 offset every day boundary is computed in,
// regardless of where the viewer is. Week, month and streak bucketing
// all depend on this staying hard-coded.
var IST = time.FixedZone("IST", 5*3600+30*60)

const DateLayout = "2006-01-02"

// Today returns the IST calendar date of the given instant.
func Today(now time.Time) string {
	return now.In(IST).Format(DateLayout)
}

// ParseDate parses an ISO date as IST midnight.
func ParseDate(date string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, IST)
}

// AddDays shifts an ISO date by n calendar days. Invalid input is
// returned unchanged.
func AddDays(date string, n int) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, n).Format(DateLayout)
}

// ISOWeekOf returns the ISO-8601 year and week number of an ISO date.
// The week containing the year's first Thursday is week 1, Monday-start.
func ISOWeekOf(date string) (year, week int, ok bool) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, 0, false
	}
	year, week = t.ISOWeek()
	return year, week, true
}

// WeekStart returns IST midnight of the Monday opening the given ISO week.
func WeekStart(year, week int) time.Time {
	// January 4 is always inside week 1.
	t := time.Date(year, time.January, 4, 0, 0, 0, 0, IST)
	t = t.AddDate(0, 0, -((int(t.Weekday()) + 6) % 7))
	return t.AddDate(0, 0, (week-1)*7)
}
