package domain

// GoalStatus is the tri-state progress marker for a single goal.
type GoalStatus string

const (
	GoalPending   GoalStatus = "pending"
	GoalProgress  GoalStatus = "progress"
	GoalCompleted GoalStatus = "completed"
)

// AntiGoalStatus is the tri-state outcome for a tracked distraction.
type AntiGoalStatus string

const (
	AntiGoalPending   AntiGoalStatus = "pending"
	AntiGoalSuccumbed AntiGoalStatus = "succumbed"
	AntiGoalConquered AntiGoalStatus = "conquered"
)

// AttachmentType distinguishes uploaded files from pasted links.
type AttachmentType string

const (
	AttachmentFile AttachmentType = "file"
	AttachmentLink AttachmentType = "link"
)

type Attachment struct {
	Type AttachmentType `json:"type"`
	Name string         `json:"name"`
	URL  string         `json:"url"`
}

// EventType classifies a calendar event.
type EventType string

const (
	EventWorkshop EventType = "workshop"
	EventDeadline EventType = "deadline"
	EventReminder EventType = "reminder"
	EventLeave    EventType = "leave"
)

type CalendarEvent struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Type          EventType `json:"type"`
	Completed     bool      `json:"completed"`
	EmailReminder bool      `json:"emailReminder,omitempty"`
}

// CategoryLog holds everything tracked for one category on one day.
// GoalStatus runs parallel to Goals; Hydrate pads it on read.
type CategoryLog struct {
	Goals       []string     `json:"goals"`
	GoalStatus  []GoalStatus `json:"goalStatus"`
	Hours       float64      `json:"hours"`
	Notes       string       `json:"notes"`
	Attachments []Attachment `json:"attachments"`
}

// DailyLog is the single document stored per user per IST calendar day.
// Date is the document key, ISO YYYY-MM-DD, immutable once created.
type DailyLog struct {
	Date       string                    `json:"date"`
	Categories map[string]CategoryLog    `json:"categories"`
	Reflection string                    `json:"reflection"`
	Rating     int                       `json:"rating"`
	Events     []CalendarEvent           `json:"events"`
	AntiGoals  map[string]AntiGoalStatus `json:"antiGoals"`
	Habits     map[string]bool           `json:"habits"`
}

// NewDailyLog returns an empty log for the given date. Logs for "today"
// exist only in memory until the first mutating write.
func NewDailyLog(date string) DailyLog {
	return DailyLog{
		Date:       date,
		Categories: map[string]CategoryLog{},
		Events:     []CalendarEvent{},
		AntiGoals:  map[string]AntiGoalStatus{},
		Habits:     map[string]bool{},
	}
}

// IsActive reports whether the day counts toward the streak: a positive
// rating, any logged hours, or any goal moved past pending.
func (l DailyLog) IsActive() bool {
	if l.Rating > 0 {
		return true
	}
	for _, cat := range l.Categories {
		if cat.Hours > 0 {
			return true
		}
		for _, st := range cat.GoalStatus {
			if st != GoalPending && st != "" {
				return true
			}
		}
	}
	return false
}

// HoursTotal sums logged hours across all categories. Negative stored
// values are ignored rather than propagated.
func (l DailyLog) HoursTotal() float64 {
	var total float64
	for _, cat := range l.Categories {
		if cat.Hours > 0 {
			total += cat.Hours
		}
	}
	return total
}
