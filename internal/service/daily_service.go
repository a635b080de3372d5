package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"moodyflicks/internal/models"
	"moodyflicks/internal/repository"
)

const (
	dailyBasePoints     = 50
	dailyStreakBonus    = 5
	dailyStreakUnlockAt = 3
	dayFormat           = "2006-01-02"
)

// DailyService runs the once-per-day movie challenge. The featured movie is
// derived from the calendar date so every user sees the same pick, and the
// completion streak lives in the state store.
type DailyService struct {
	store    repository.StateStore
	catalog  *CatalogService
	progress *ProgressService
	now      func() time.Time
}

// NewDailyService creates a new DailyService.
func NewDailyService(store repository.StateStore, catalog *CatalogService, progress *ProgressService) *DailyService {
	return &DailyService{
		store:    store,
		catalog:  catalog,
		progress: progress,
		now:      time.Now,
	}
}

// Challenge returns today's featured movie and the user's up-to-date
// completion state.
func (s *DailyService) Challenge(ctx context.Context, userID string) (*models.DailyChallenge, error) {
	state, err := s.syncedState(ctx, userID)
	if err != nil {
		return nil, err
	}

	movie, err := s.todaysMovie()
	if err != nil {
		return nil, err
	}

	return &models.DailyChallenge{Movie: movie, State: *state}, nil
}

// Complete records today's challenge as done, awards the streak-scaled
// reward and evaluates the streak achievement. Completing twice on the same
// day is a no-op.
func (s *DailyService) Complete(ctx context.Context, userID string) (*models.DailyCompletionResult, error) {
	state, err := s.syncedState(ctx, userID)
	if err != nil {
		return nil, err
	}

	if state.CompletedToday {
		return &models.DailyCompletionResult{
			State: *state,
			NoOp:  true,
			Notices: []models.Notice{
				{Title: "Already Completed", Description: "Come back tomorrow for a new challenge."},
			},
		}, nil
	}

	state.CompletedToday = true
	state.LastCompletedDate = s.now().Format(dayFormat)

	points := dailyBasePoints + state.Streak*dailyStreakBonus
	if _, err := s.progress.AwardPoints(ctx, userID, points); err != nil {
		return nil, err
	}

	result := &models.DailyCompletionResult{
		PointsEarned: points,
		Notices: []models.Notice{
			{
				Title:       "Daily Challenge Completed!",
				Description: fmt.Sprintf("You've earned %d points! (%d day streak)", points, state.Streak),
			},
		},
	}

	if state.Streak >= dailyStreakUnlockAt {
		update, err := s.progress.UnlockAchievement(ctx, userID, models.AchievementDailyStreak)
		if err != nil {
			return nil, err
		}
		if !update.NoOp {
			result.Unlocked = update.Unlocked
			result.Notices = append(result.Notices, update.Notices...)
		}
	}

	if err := s.saveState(ctx, userID, state); err != nil {
		return nil, err
	}
	result.State = *state

	slog.Info("daily challenge completed", "user_id", userID, "points", points, "streak", state.Streak)
	return result, nil
}

// syncedState loads the daily state and applies the day rollover: on a new
// day the completed flag clears, and the streak increments when yesterday
// was completed or resets to one after a gap. A user who has never
// completed a challenge keeps their zero streak.
func (s *DailyService) syncedState(ctx context.Context, userID string) (*models.DailyChallengeState, error) {
	state := &models.DailyChallengeState{}
	if err := loadSlot(ctx, s.store, userID, repository.SlotDailyCompleted, &state.CompletedToday); err != nil {
		return nil, err
	}
	if err := loadSlot(ctx, s.store, userID, repository.SlotDailyDate, &state.LastCompletedDate); err != nil {
		return nil, err
	}
	if err := loadSlot(ctx, s.store, userID, repository.SlotDailyStreak, &state.Streak); err != nil {
		return nil, err
	}

	today := s.now().Format(dayFormat)
	if state.LastCompletedDate == today {
		return state, nil
	}

	state.CompletedToday = false
	if state.LastCompletedDate != "" {
		yesterday := s.now().AddDate(0, 0, -1).Format(dayFormat)
		if state.LastCompletedDate == yesterday {
			state.Streak++
		} else {
			state.Streak = 1
		}
	}

	if err := s.saveState(ctx, userID, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *DailyService) saveState(ctx context.Context, userID string, state *models.DailyChallengeState) error {
	if err := saveSlot(ctx, s.store, userID, repository.SlotDailyCompleted, state.CompletedToday); err != nil {
		return err
	}
	if err := saveSlot(ctx, s.store, userID, repository.SlotDailyDate, state.LastCompletedDate); err != nil {
		return err
	}
	return saveSlot(ctx, s.store, userID, repository.SlotDailyStreak, state.Streak)
}

// todaysMovie picks the featured movie deterministically from the date: the
// day of year selects a popularity page and the day of month an index into
// it, so every user gets the same movie.
func (s *DailyService) todaysMovie() (*models.MovieDetail, error) {
	today := s.now()
	page := today.YearDay()%10 + 1

	movies, err := s.catalog.Popular(page)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch daily movie page: %w", err)
	}
	if len(movies) == 0 {
		return nil, fmt.Errorf("no movies returned for daily challenge page %d", page)
	}

	idx := today.Day() % 20
	if idx >= len(movies) {
		idx = idx % len(movies)
	}

	return s.catalog.Detail(movies[idx].ID)
}
