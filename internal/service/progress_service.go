package service

import (
	"context"
	"fmt"
	"log/slog"

	"moodyflicks/internal/models"
	"moodyflicks/internal/repository"
)

// Point values for ledger events.
const (
	pointsWatched    = 10
	pointsRated      = 5
	pointsFirstSave  = 5
	pointsShare      = 15
	pointsWatched5   = 50
	pointsCritic     = 30
	pointsCollector  = 25
	pointsCurator    = 10
	pointsTriviaLike = 2
	watchedThreshold = 5
	ratedThreshold   = 10
	savedThreshold   = 10
)

// ProgressService is the gamification ledger: points, watched/rated/saved
// sets and unlocked achievements. Every mutation is an independent
// read-modify-write against the state store.
type ProgressService struct {
	store repository.StateStore
}

// NewProgressService creates a new ProgressService.
func NewProgressService(store repository.StateStore) *ProgressService {
	return &ProgressService{store: store}
}

// Progress returns the user's aggregate, created lazily with zero values on
// first read.
func (s *ProgressService) Progress(ctx context.Context, userID string) (*models.UserProgress, error) {
	p := &models.UserProgress{
		WatchedMovieIDs: []int{},
		RatedMovieIDs:   []int{},
		SavedMovieIDs:   []int{},
		Achievements:    []models.Achievement{},
	}
	if err := loadSlot(ctx, s.store, userID, repository.SlotPoints, &p.Points); err != nil {
		return nil, err
	}
	if err := loadSlot(ctx, s.store, userID, repository.SlotWatched, &p.WatchedMovieIDs); err != nil {
		return nil, err
	}
	if err := loadSlot(ctx, s.store, userID, repository.SlotRated, &p.RatedMovieIDs); err != nil {
		return nil, err
	}
	if err := loadSlot(ctx, s.store, userID, repository.SlotSaved, &p.SavedMovieIDs); err != nil {
		return nil, err
	}
	if err := loadSlot(ctx, s.store, userID, repository.SlotAchievements, &p.Achievements); err != nil {
		return nil, err
	}
	return p, nil
}

// AwardPoints adds amount to the user's point total.
func (s *ProgressService) AwardPoints(ctx context.Context, userID string, amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("point amount must be positive, got %d", amount)
	}
	var points int
	if err := loadSlot(ctx, s.store, userID, repository.SlotPoints, &points); err != nil {
		return 0, err
	}
	points += amount
	if err := saveSlot(ctx, s.store, userID, repository.SlotPoints, points); err != nil {
		return 0, err
	}
	slog.Debug("awarded points", "user_id", userID, "amount", amount, "total", points)
	return points, nil
}

// MarkWatched inserts movieID into the watched set, awards the watch bonus
// and evaluates the watched-count achievement. Marking an already-watched
// movie is a no-op with an informational notice.
func (s *ProgressService) MarkWatched(ctx context.Context, userID string, movieID int) (*models.ProgressUpdate, error) {
	p, err := s.Progress(ctx, userID)
	if err != nil {
		return nil, err
	}

	if p.HasWatched(movieID) {
		return &models.ProgressUpdate{
			Progress: p,
			NoOp:     true,
			Notices: []models.Notice{
				{Title: "Already Watched", Description: "You've already marked this movie as watched."},
			},
		}, nil
	}

	p.WatchedMovieIDs = append(p.WatchedMovieIDs, movieID)
	p.Points += pointsWatched
	update := &models.ProgressUpdate{
		Progress:     p,
		PointsEarned: pointsWatched,
		Notices: []models.Notice{
			{Title: "Movie Marked as Watched!", Description: "You've earned 10 points for your movie journey."},
		},
	}

	// The threshold is an exact-count trigger: the bonus fires only on the
	// transition to exactly five distinct watched movies.
	if len(p.WatchedMovieIDs) == watchedThreshold && !p.HasAchievement(models.AchievementWatched5) {
		s.unlock(p, update, models.AchievementWatched5, pointsWatched5)
	}

	if err := s.persist(ctx, userID, p); err != nil {
		return nil, err
	}
	return update, nil
}

// RateMovie inserts movieID into the rated set and awards rating points.
// Rating an already-rated movie is a no-op with a notice.
func (s *ProgressService) RateMovie(ctx context.Context, userID string, movieID int, liked bool) (*models.ProgressUpdate, error) {
	p, err := s.Progress(ctx, userID)
	if err != nil {
		return nil, err
	}

	if p.HasRated(movieID) {
		return &models.ProgressUpdate{
			Progress: p,
			NoOp:     true,
			Notices: []models.Notice{
				{Title: "Already Rated", Description: "You've already rated this movie."},
			},
		}, nil
	}

	p.RatedMovieIDs = append(p.RatedMovieIDs, movieID)
	p.Points += pointsRated

	title := "You disliked this movie"
	if liked {
		title = "You liked this movie!"
	}
	update := &models.ProgressUpdate{
		Progress:     p,
		PointsEarned: pointsRated,
		Notices: []models.Notice{
			{Title: title, Description: "You've earned 5 points for rating."},
		},
	}

	if len(p.RatedMovieIDs) == ratedThreshold && !p.HasAchievement(models.AchievementCritic) {
		s.unlock(p, update, models.AchievementCritic, pointsCritic)
	}

	if err := s.persist(ctx, userID, p); err != nil {
		return nil, err
	}
	return update, nil
}

// ToggleSaved adds or removes movieID from the watchlist. Points are
// awarded only on the very first save (the empty-to-non-empty transition).
func (s *ProgressService) ToggleSaved(ctx context.Context, userID string, movieID int) (*models.ProgressUpdate, error) {
	p, err := s.Progress(ctx, userID)
	if err != nil {
		return nil, err
	}

	update := &models.ProgressUpdate{Progress: p}

	if p.HasSaved(movieID) {
		filtered := p.SavedMovieIDs[:0]
		for _, id := range p.SavedMovieIDs {
			if id != movieID {
				filtered = append(filtered, id)
			}
		}
		p.SavedMovieIDs = filtered
		update.Notices = append(update.Notices, models.Notice{
			Title: "Movie Removed", Description: "Movie has been removed from your watchlist.",
		})
	} else {
		firstEver := len(p.SavedMovieIDs) == 0
		p.SavedMovieIDs = append(p.SavedMovieIDs, movieID)
		if firstEver {
			p.Points += pointsFirstSave
			update.PointsEarned += pointsFirstSave
		}
		update.Notices = append(update.Notices, models.Notice{
			Title: "Movie Saved!", Description: "Added to your watchlist for later.",
		})

		if len(p.SavedMovieIDs) >= savedThreshold && !p.HasAchievement(models.AchievementCollector) {
			s.unlock(p, update, models.AchievementCollector, pointsCollector)
		}
	}

	if err := s.persist(ctx, userID, p); err != nil {
		return nil, err
	}
	return update, nil
}

// RecordShare unlocks the sharing achievement and its bonus on the user's
// first share; later shares are benign no-ops.
func (s *ProgressService) RecordShare(ctx context.Context, userID string) (*models.ProgressUpdate, error) {
	p, err := s.Progress(ctx, userID)
	if err != nil {
		return nil, err
	}

	if p.HasAchievement(models.AchievementSharing) {
		return &models.ProgressUpdate{Progress: p, NoOp: true}, nil
	}

	update := &models.ProgressUpdate{Progress: p}
	s.unlock(p, update, models.AchievementSharing, pointsShare)

	if err := s.persist(ctx, userID, p); err != nil {
		return nil, err
	}
	return update, nil
}

// UnlockAchievement is the idempotent insert into the achievement set. The
// returned update carries the unlock notice only the first time.
func (s *ProgressService) UnlockAchievement(ctx context.Context, userID string, a models.Achievement) (*models.ProgressUpdate, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("unknown achievement %q", a)
	}

	p, err := s.Progress(ctx, userID)
	if err != nil {
		return nil, err
	}

	if p.HasAchievement(a) {
		return &models.ProgressUpdate{Progress: p, NoOp: true}, nil
	}

	update := &models.ProgressUpdate{Progress: p}
	s.unlock(p, update, a, 0)

	if err := s.persist(ctx, userID, p); err != nil {
		return nil, err
	}
	return update, nil
}

func (s *ProgressService) unlock(p *models.UserProgress, update *models.ProgressUpdate, a models.Achievement, bonus int) {
	p.Achievements = append(p.Achievements, a)
	if bonus > 0 {
		p.Points += bonus
		update.PointsEarned += bonus
	}
	update.Unlocked = append(update.Unlocked, a)

	info := models.AchievementCatalog[a]
	update.Notices = append(update.Notices, models.Notice{
		Title:       "New Achievement!",
		Description: fmt.Sprintf("%s: %s", info.Title, info.Description),
	})
	slog.Info("achievement unlocked", "achievement", a, "bonus", bonus)
}

func (s *ProgressService) persist(ctx context.Context, userID string, p *models.UserProgress) error {
	if err := saveSlot(ctx, s.store, userID, repository.SlotPoints, p.Points); err != nil {
		return err
	}
	if err := saveSlot(ctx, s.store, userID, repository.SlotWatched, p.WatchedMovieIDs); err != nil {
		return err
	}
	if err := saveSlot(ctx, s.store, userID, repository.SlotRated, p.RatedMovieIDs); err != nil {
		return err
	}
	if err := saveSlot(ctx, s.store, userID, repository.SlotSaved, p.SavedMovieIDs); err != nil {
		return err
	}
	return saveSlot(ctx, s.store, userID, repository.SlotAchievements, p.Achievements)
}
