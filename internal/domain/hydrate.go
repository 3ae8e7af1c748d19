package domain

// Hydrate fills the gaps a stored log accumulates as the user's config
// evolves: categories, anti-goals and habits added after the log was
// written are synthesized with zero values, and GoalStatus is padded
// (or trimmed) to run parallel to Goals. The result is display-ready
// and never written back; stored documents stay as the user left them.
// Hydrating twice is the same as hydrating once.
func Hydrate(log DailyLog, cfg UserConfig) DailyLog {
	out := log
	out.Categories = make(map[string]CategoryLog, len(cfg.Categories))

	for id, cat := range log.Categories {
		out.Categories[id] = hydrateCategory(cat)
	}
	for _, def := range cfg.Categories {
		if _, ok := out.Categories[def.ID]; !ok {
			out.Categories[def.ID] = CategoryLog{
				Goals:       []string{},
				GoalStatus:  []GoalStatus{},
				Attachments: []Attachment{},
			}
		}
	}

	out.AntiGoals = make(map[string]AntiGoalStatus, len(cfg.AntiGoals))
	for id, st := range log.AntiGoals {
		out.AntiGoals[id] = st
	}
	for _, def := range cfg.AntiGoals {
		if _, ok := out.AntiGoals[def.ID]; !ok {
			out.AntiGoals[def.ID] = AntiGoalPending
		}
	}

	out.Habits = make(map[string]bool, len(cfg.Habits))
	for id, done := range log.Habits {
		out.Habits[id] = done
	}
	for _, def := range cfg.Habits {
		if _, ok := out.Habits[def.ID]; !ok {
			out.Habits[def.ID] = false
		}
	}

	if out.Events == nil {
		out.Events = []CalendarEvent{}
	}
	return out
}

func hydrateCategory(cat CategoryLog) CategoryLog {
	out := cat
	if out.Goals == nil {
		out.Goals = []string{}
	}

	status := make([]GoalStatus, len(out.Goals))
	for i := range status {
		if i < len(cat.GoalStatus) && cat.GoalStatus[i] != "" {
			status[i] = cat.GoalStatus[i]
		} else {
			status[i] = GoalPending
		}
	}
	out.GoalStatus = status

	if out.Attachments == nil {
		out.Attachments = []Attachment{}
	}
	if out.Hours < 0 {
		out.Hours = 0
	}
	return out
}
