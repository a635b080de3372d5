package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodyflicks/internal/repository"
)

func newDailyService() (*DailyService, *ProgressService) {
	store := repository.NewMemoryStateStore()
	progress := NewProgressService(store)
	return NewDailyService(store, nil, progress), progress
}

func setDay(svc *DailyService, day time.Time) {
	svc.now = func() time.Time { return day }
}

func TestDailyCompleteFirstTime(t *testing.T) {
	svc, progress := newDailyService()
	ctx := context.Background()
	setDay(svc, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))

	result, err := svc.Complete(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, result.NoOp)
	// Base reward with no streak bonus yet.
	assert.Equal(t, 50, result.PointsEarned)
	assert.True(t, result.State.CompletedToday)
	assert.Equal(t, "2026-03-10", result.State.LastCompletedDate)

	p, err := progress.Progress(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 50, p.Points)
}

func TestDailyCompleteTwiceSameDay(t *testing.T) {
	svc, _ := newDailyService()
	ctx := context.Background()
	setDay(svc, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))

	_, err := svc.Complete(ctx, "u1")
	require.NoError(t, err)

	result, err := svc.Complete(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, result.NoOp)
	assert.Equal(t, 0, result.PointsEarned)
}

func TestDailyStreakIncrementsOnConsecutiveDays(t *testing.T) {
	svc, _ := newDailyService()
	ctx := context.Background()

	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	setDay(svc, day)
	result, err := svc.Complete(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, result.State.Streak)

	// Next day: streak moves to 1 and scales the reward.
	setDay(svc, day.AddDate(0, 0, 1))
	result, err = svc.Complete(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, result.State.Streak)
	assert.Equal(t, 55, result.PointsEarned)

	setDay(svc, day.AddDate(0, 0, 2))
	result, err = svc.Complete(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, result.State.Streak)
	assert.Equal(t, 60, result.PointsEarned)
}

func TestDailyStreakResetsAfterGap(t *testing.T) {
	svc, _ := newDailyService()
	ctx := context.Background()

	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	setDay(svc, day)
	_, err := svc.Complete(ctx, "u1")
	require.NoError(t, err)

	setDay(svc, day.AddDate(0, 0, 1))
	_, err = svc.Complete(ctx, "u1")
	require.NoError(t, err)

	// Three days of silence: the streak restarts at one.
	setDay(svc, day.AddDate(0, 0, 4))
	result, err := svc.Complete(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, result.State.Streak)
	assert.Equal(t, 55, result.PointsEarned)
}

func TestDailyStreakAchievement(t *testing.T) {
	svc, progress := newDailyService()
	ctx := context.Background()

	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		setDay(svc, day.AddDate(0, 0, i))
		_, err := svc.Complete(ctx, "u1")
		require.NoError(t, err)
	}

	// Day five: streak reaches 4, past the unlock threshold.
	setDay(svc, day.AddDate(0, 0, 4))
	result, err := svc.Complete(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 4, result.State.Streak)

	p, err := progress.Progress(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, p.HasAchievement("daily-streak"))
}
