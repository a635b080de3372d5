package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodyflicks/internal/models"
	"moodyflicks/internal/repository"
)

func newProgressService() *ProgressService {
	return NewProgressService(repository.NewMemoryStateStore())
}

func TestProgressStartsEmpty(t *testing.T) {
	svc := newProgressService()

	p, err := svc.Progress(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Points)
	assert.Equal(t, 1, p.Level())
	assert.Empty(t, p.WatchedMovieIDs)
	assert.Empty(t, p.Achievements)
}

func TestMarkWatched(t *testing.T) {
	svc := newProgressService()
	ctx := context.Background()

	update, err := svc.MarkWatched(ctx, "u1", 42)
	require.NoError(t, err)
	assert.Equal(t, 10, update.PointsEarned)
	assert.Equal(t, 10, update.Progress.Points)
	assert.False(t, update.NoOp)

	// Marking the same movie again changes nothing.
	update, err = svc.MarkWatched(ctx, "u1", 42)
	require.NoError(t, err)
	assert.True(t, update.NoOp)
	assert.Equal(t, 0, update.PointsEarned)
	assert.Equal(t, 10, update.Progress.Points)
}

func TestWatchedAchievementAtFive(t *testing.T) {
	svc := newProgressService()
	ctx := context.Background()

	for id := 1; id <= 4; id++ {
		update, err := svc.MarkWatched(ctx, "u1", id)
		require.NoError(t, err)
		assert.Empty(t, update.Unlocked)
	}

	update, err := svc.MarkWatched(ctx, "u1", 5)
	require.NoError(t, err)
	assert.Equal(t, []models.Achievement{models.AchievementWatched5}, update.Unlocked)
	// 10 watch points plus the 50 point bonus.
	assert.Equal(t, 60, update.PointsEarned)
	assert.Equal(t, 100, update.Progress.Points)
	assert.Equal(t, 2, update.Progress.Level())
}

func TestRateMovie(t *testing.T) {
	svc := newProgressService()
	ctx := context.Background()

	update, err := svc.RateMovie(ctx, "u1", 7, true)
	require.NoError(t, err)
	assert.Equal(t, 5, update.PointsEarned)

	update, err = svc.RateMovie(ctx, "u1", 7, false)
	require.NoError(t, err)
	assert.True(t, update.NoOp)
}

func TestCriticAchievementAtTen(t *testing.T) {
	svc := newProgressService()
	ctx := context.Background()

	for id := 1; id <= 9; id++ {
		_, err := svc.RateMovie(ctx, "u1", id, true)
		require.NoError(t, err)
	}

	update, err := svc.RateMovie(ctx, "u1", 10, false)
	require.NoError(t, err)
	assert.Equal(t, []models.Achievement{models.AchievementCritic}, update.Unlocked)
	assert.Equal(t, 35, update.PointsEarned)
}

func TestToggleSaved(t *testing.T) {
	svc := newProgressService()
	ctx := context.Background()

	// First ever save earns the starter bonus.
	update, err := svc.ToggleSaved(ctx, "u1", 11)
	require.NoError(t, err)
	assert.Equal(t, 5, update.PointsEarned)
	assert.True(t, update.Progress.HasSaved(11))

	// Removing is free.
	update, err = svc.ToggleSaved(ctx, "u1", 11)
	require.NoError(t, err)
	assert.Equal(t, 0, update.PointsEarned)
	assert.False(t, update.Progress.HasSaved(11))

	// The watchlist is empty again, so saving pays the bonus again.
	update, err = svc.ToggleSaved(ctx, "u1", 11)
	require.NoError(t, err)
	assert.Equal(t, 5, update.PointsEarned)
	assert.True(t, update.Progress.HasSaved(11))

	// A second movie on a non-empty watchlist earns nothing.
	update, err = svc.ToggleSaved(ctx, "u1", 12)
	require.NoError(t, err)
	assert.Equal(t, 0, update.PointsEarned)
	assert.True(t, update.Progress.HasSaved(12))
}

func TestCollectorAchievement(t *testing.T) {
	svc := newProgressService()
	ctx := context.Background()

	var last *models.ProgressUpdate
	for id := 1; id <= 10; id++ {
		var err error
		last, err = svc.ToggleSaved(ctx, "u1", id)
		require.NoError(t, err)
	}
	assert.Equal(t, []models.Achievement{models.AchievementCollector}, last.Unlocked)
	assert.Equal(t, 25, last.PointsEarned)
}

func TestRecordShare(t *testing.T) {
	svc := newProgressService()
	ctx := context.Background()

	update, err := svc.RecordShare(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 15, update.PointsEarned)
	assert.Equal(t, []models.Achievement{models.AchievementSharing}, update.Unlocked)

	update, err = svc.RecordShare(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, update.NoOp)
	assert.Equal(t, 15, update.Progress.Points)
}

func TestUnlockAchievementRejectsUnknown(t *testing.T) {
	svc := newProgressService()

	_, err := svc.UnlockAchievement(context.Background(), "u1", "not-a-thing")
	assert.Error(t, err)
}

func TestAwardPoints(t *testing.T) {
	svc := newProgressService()
	ctx := context.Background()

	total, err := svc.AwardPoints(ctx, "u1", 30)
	require.NoError(t, err)
	assert.Equal(t, 30, total)

	total, err = svc.AwardPoints(ctx, "u1", 70)
	require.NoError(t, err)
	assert.Equal(t, 100, total)

	_, err = svc.AwardPoints(ctx, "u1", 0)
	assert.Error(t, err)
}

func TestUsersAreIsolated(t *testing.T) {
	svc := newProgressService()
	ctx := context.Background()

	_, err := svc.MarkWatched(ctx, "u1", 42)
	require.NoError(t, err)

	p, err := svc.Progress(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Points)
	assert.False(t, p.HasWatched(42))
}
