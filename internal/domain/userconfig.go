package domain

type CategoryDef struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Color   string `json:"color"`
	IconKey string `json:"iconKey"`
}

type AntiGoalDef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type HabitDef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	// CreatedAt is an ISO date; the habit only applies to days on or
	// after it. Empty means the habit has always existed.
	CreatedAt string `json:"createdAt"`
}

// ScholarApp is a bookmark shown on the dashboard.
type ScholarApp struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	URL    string `json:"url"`
	Accent string `json:"accent"`
	Emoji  string `json:"emoji"`
}

// UserConfig is the single settings document per user. Writes replace
// the whole document; there are no partial updates.
type UserConfig struct {
	Categories []CategoryDef `json:"categories"`
	AntiGoals  []AntiGoalDef `json:"antiGoals"`
	Habits     []HabitDef    `json:"habits"`
	// StreakFreezes is displayed but never consumed anywhere; the
	// streak walk ignores it.
	StreakFreezes int          `json:"streakFreezes"`
	ScholarApps   []ScholarApp `json:"scholarApps"`
}

// MinCategories is enforced only when a config update would delete
// below it; a fresh config may start smaller.
const MinCategories = 2

// DefaultConfig is the config bootstrapped on a user's first visit.
func DefaultConfig() UserConfig {
	return UserConfig{
		Categories: []CategoryDef{
			{ID: "research", Title: "Research Progress", Color: "indigo", IconKey: "microscope"},
			{ID: "interview", Title: "PhD Interview Prep", Color: "emerald", IconKey: "cap"},
			{ID: "gate", Title: "GATE Preparation", Color: "amber", IconKey: "book"},
		},
		AntiGoals:   []AntiGoalDef{},
		Habits:      []HabitDef{},
		ScholarApps: []ScholarApp{},
	}
}
