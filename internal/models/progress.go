package models

// Achievement is a one-time unlockable flag tied to a behavioral milestone.
type Achievement string

const (
	AchievementSharing     Achievement = "sharing"
	AchievementWatched5    Achievement = "watched-5"
	AchievementCritic      Achievement = "critic"
	AchievementCollector   Achievement = "collector"
	AchievementCurator     Achievement = "curator"
	AchievementDailyStreak Achievement = "daily-streak"
	AchievementQuizMaster  Achievement = "quiz-master"
	AchievementQuizStreak  Achievement = "quiz-streak"
)

// AchievementInfo describes an achievement for display.
type AchievementInfo struct {
	Title       string
	Description string
}

// AchievementCatalog maps each achievement to its display copy.
var AchievementCatalog = map[Achievement]AchievementInfo{
	AchievementSharing:     {"Social Butterfly", "You shared a movie with friends!"},
	AchievementWatched5:    {"Movie Buff", "You've watched 5 movies!"},
	AchievementCritic:      {"Movie Critic", "You've rated 10 movies!"},
	AchievementCollector:   {"Movie Collector", "You've saved 10 movies to your watchlist!"},
	AchievementCurator:     {"Movie Curator", "You've started organizing your movie collection!"},
	AchievementDailyStreak: {"Daily Devotion", "You've completed the daily challenge 3 days in a row!"},
	AchievementQuizMaster:  {"Quiz Master", "You got a perfect score!"},
	AchievementQuizStreak:  {"Quiz Enthusiast", "You've completed quizzes 3 days in a row!"},
}

// Valid reports whether a is a known achievement.
func (a Achievement) Valid() bool {
	_, ok := AchievementCatalog[a]
	return ok
}

// UserProgress is the gamification aggregate for one user.
type UserProgress struct {
	Points          int           `json:"points"`
	WatchedMovieIDs []int         `json:"watched_movie_ids"`
	RatedMovieIDs   []int         `json:"rated_movie_ids"`
	SavedMovieIDs   []int         `json:"saved_movie_ids"`
	Achievements    []Achievement `json:"achievements"`
}

// HasWatched reports whether movieID is already marked watched.
func (p *UserProgress) HasWatched(movieID int) bool { return containsInt(p.WatchedMovieIDs, movieID) }

// HasRated reports whether movieID is already rated.
func (p *UserProgress) HasRated(movieID int) bool { return containsInt(p.RatedMovieIDs, movieID) }

// HasSaved reports whether movieID is in the watchlist.
func (p *UserProgress) HasSaved(movieID int) bool { return containsInt(p.SavedMovieIDs, movieID) }

// HasAchievement reports whether the achievement is already unlocked.
func (p *UserProgress) HasAchievement(a Achievement) bool {
	for _, have := range p.Achievements {
		if have == a {
			return true
		}
	}
	return false
}

// Level derives the user level from accumulated points.
func (p *UserProgress) Level() int {
	return p.Points/100 + 1
}

func containsInt(ids []int, id int) bool {
	for _, have := range ids {
		if have == id {
			return true
		}
	}
	return false
}

// Notice is a user-facing informational message produced by a mutation,
// rendered by clients as a toast.
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ProgressUpdate is the result of a ledger mutation: the new aggregate plus
// any notices and achievements the mutation produced.
type ProgressUpdate struct {
	Progress     *UserProgress `json:"progress"`
	PointsEarned int           `json:"points_earned"`
	Unlocked     []Achievement `json:"unlocked,omitempty"`
	Notices      []Notice      `json:"notices,omitempty"`
	NoOp         bool          `json:"no_op"`
}
