package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodyflicks/internal/models"
	"moodyflicks/internal/quiz"
	"moodyflicks/internal/repository"
)

func newQuizService() (*QuizService, *ProgressService) {
	store := repository.NewMemoryStateStore()
	progress := NewProgressService(store)
	svc := NewQuizService(store, nil, progress)
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }
	return svc, progress
}

func registerSession(svc *QuizService, n int) *quiz.Session {
	questions := make([]models.QuizQuestion, n)
	for i := range questions {
		questions[i] = models.QuizQuestion{
			Question:      "q",
			Options:       []string{"right", "wrong"},
			CorrectAnswer: "right",
			Points:        10,
		}
	}
	session := quiz.NewSession("quiz_test", "u1", "cheerful", models.QuizModeRegular, questions)
	svc.mu.Lock()
	svc.sessions[session.ID] = session
	svc.mu.Unlock()
	return session
}

func TestQuizAnswerFlow(t *testing.T) {
	svc, _ := newQuizService()
	registerSession(svc, 2)
	ctx := context.Background()

	resp, err := svc.Answer(ctx, "quiz_test", "right")
	require.NoError(t, err)
	assert.True(t, resp.Correct)
	assert.Equal(t, 10, resp.PointsEarned)
	assert.False(t, resp.Completed)
	assert.Nil(t, resp.Completion)
	assert.Equal(t, string(quiz.StateShowingExplanation), resp.Session.State)
}

func TestQuizUnknownSession(t *testing.T) {
	svc, _ := newQuizService()

	_, err := svc.Answer(context.Background(), "quiz_missing", "right")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, _, err = svc.Session(context.Background(), "quiz_missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestQuizCompletionUpdatesStats(t *testing.T) {
	svc, progress := newQuizService()
	session := registerSession(svc, 1)
	ctx := context.Background()

	resp, err := svc.Answer(ctx, session.ID, "right")
	require.NoError(t, err)
	require.NotNil(t, resp.Completion)
	assert.Equal(t, 1, resp.Completion.Score)
	assert.Equal(t, 10, resp.Completion.EarnedPoints)

	stats, err := svc.Stats(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalQuizzes)
	assert.Equal(t, 1, stats.CorrectAnswers)
	assert.Equal(t, 1, stats.TotalQuestions)
	assert.Equal(t, 1, stats.BestScore)
	assert.Equal(t, 1, stats.Streaks)
	assert.Equal(t, "2026-03-10", stats.LastQuizDate)

	// Earned points land on the ledger and a perfect score unlocks the
	// achievement.
	p, err := progress.Progress(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 10, p.Points)
	assert.True(t, p.HasAchievement(models.AchievementQuizMaster))

	// The finished session is gone.
	_, _, err = svc.Session(ctx, session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestQuizImperfectScoreNoAchievement(t *testing.T) {
	svc, progress := newQuizService()
	session := registerSession(svc, 2)
	ctx := context.Background()

	clock := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	session.WithClock(func() time.Time { return clock })

	_, err := svc.Answer(ctx, session.ID, "wrong")
	require.NoError(t, err)

	// Step past the explanation delay to reach the last question.
	clock = clock.Add(3 * time.Second)
	resp, err := svc.Answer(ctx, session.ID, "right")
	require.NoError(t, err)
	require.NotNil(t, resp.Completion)
	assert.Equal(t, 1, resp.Completion.Score)

	p, err := progress.Progress(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, p.HasAchievement(models.AchievementQuizMaster))
	assert.Equal(t, 10, p.Points)
}

func TestQuizStreakSameDayDoesNotIncrement(t *testing.T) {
	svc, _ := newQuizService()
	ctx := context.Background()

	first := registerSession(svc, 1)
	_, err := svc.Answer(ctx, first.ID, "wrong")
	require.NoError(t, err)

	// A second quiz on the same day counts toward totals but not the streak.
	second := registerSession(svc, 1)
	_, err = svc.Answer(ctx, second.ID, "wrong")
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalQuizzes)
	assert.Equal(t, 1, stats.Streaks)
}

func TestQuizStartRejectsUnknownMood(t *testing.T) {
	svc, _ := newQuizService()

	_, err := svc.StartSession(context.Background(), "u1", models.StartQuizRequest{Mood: "bored"})
	assert.ErrorIs(t, err, ErrUnknownMood)
}
