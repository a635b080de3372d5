package models

// DailyChallengeState tracks the once-per-day challenge.
type DailyChallengeState struct {
	CompletedToday    bool   `json:"completed_today"`
	LastCompletedDate string `json:"last_completed_date,omitempty"`
	Streak            int    `json:"streak"`
}

// DailyChallenge is the daily challenge view: today's featured movie plus the
// user's completion state.
type DailyChallenge struct {
	Movie *MovieDetail        `json:"movie"`
	State DailyChallengeState `json:"state"`
}

// DailyCompletionResult is returned when the challenge is completed.
type DailyCompletionResult struct {
	PointsEarned int                 `json:"points_earned"`
	State        DailyChallengeState `json:"state"`
	Unlocked     []Achievement       `json:"unlocked,omitempty"`
	Notices      []Notice            `json:"notices,omitempty"`
	NoOp         bool                `json:"no_op"`
}

// MoodScore is one mood's affinity percentage for a movie.
type MoodScore struct {
	Mood       string `json:"mood"`
	Percentage int    `json:"percentage"`
}
