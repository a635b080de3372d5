package quiz

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodyflicks/internal/models"
)

// fakeClock steps time manually for session tests.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func sessionQuestions(n int) []models.QuizQuestion {
	questions := make([]models.QuizQuestion, n)
	for i := range questions {
		questions[i] = models.QuizQuestion{
			Question:      "q",
			Options:       []string{"right", "wrong"},
			CorrectAnswer: "right",
			Points:        15,
		}
	}
	return questions
}

func newTestSession(mode models.QuizMode, n int) (*Session, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	s := &Session{
		ID:        "quiz_test",
		UserID:    "u1",
		Mood:      "cheerful",
		Mode:      mode,
		Questions: sessionQuestions(n),
		State:     StateAwaitingAnswer,
		now:       clock.now,
	}
	if mode == models.QuizModeTimed {
		s.deadline = clock.t.Add(questionTime)
	}
	return s, clock
}

func TestAnswerCorrectAndWrong(t *testing.T) {
	s, _ := newTestSession(models.QuizModeRegular, 2)

	result, err := s.Answer("right")
	require.NoError(t, err)
	assert.True(t, result.Correct)
	assert.Equal(t, 15, result.PointsEarned)
	assert.False(t, result.Completed)
	assert.Equal(t, StateShowingExplanation, s.State)

	// Second answer arrives before the explanation delay elapses.
	_, err = s.Answer("right")
	assert.ErrorIs(t, err, ErrNotAwaitingAnswer)
}

func TestExplanationDelayAdvances(t *testing.T) {
	s, clock := newTestSession(models.QuizModeRegular, 2)

	_, err := s.Answer("wrong")
	require.NoError(t, err)
	assert.Equal(t, StateShowingExplanation, s.State)
	assert.Equal(t, 0, s.Score)

	clock.advance(explanationDelay)
	s.Sync()
	assert.Equal(t, StateAwaitingAnswer, s.State)
	assert.Equal(t, 1, s.Current)
}

func TestTimedBonus(t *testing.T) {
	s, clock := newTestSession(models.QuizModeTimed, 2)

	// Answer with 12 seconds left: 15 base + floor(12/3) bonus.
	clock.advance(18 * time.Second)
	result, err := s.Answer("right")
	require.NoError(t, err)
	assert.Equal(t, 19, result.PointsEarned)
	assert.Equal(t, 19, s.EarnedPoints)
}

func TestTimedTimeoutAdvancesSilently(t *testing.T) {
	s, clock := newTestSession(models.QuizModeTimed, 3)

	clock.advance(questionTime + time.Second)
	s.Sync()

	// The first question expired with no score; the timer restarted.
	assert.Equal(t, 1, s.Current)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, StateAwaitingAnswer, s.State)
	assert.Equal(t, 30, s.SecondsRemaining())
}

func TestTimedTimeoutCompletesSession(t *testing.T) {
	s, clock := newTestSession(models.QuizModeTimed, 2)

	// Both question timers expire one after the other.
	clock.advance(questionTime + time.Second)
	s.Sync()
	clock.advance(questionTime + time.Second)
	assert.True(t, s.Completed())
	assert.Nil(t, s.CurrentQuestion())
	assert.Equal(t, 0, s.Score)
}

func TestLastAnswerCompletes(t *testing.T) {
	s, clock := newTestSession(models.QuizModeRegular, 2)

	_, err := s.Answer("right")
	require.NoError(t, err)
	clock.advance(explanationDelay)

	result, err := s.Answer("right")
	require.NoError(t, err)
	assert.True(t, result.Completed)
	assert.Equal(t, StateCompleted, s.State)
	assert.Equal(t, 2, s.Score)
	assert.Equal(t, 30, s.EarnedPoints)
}

func TestConcurrentAnswersScoreOnce(t *testing.T) {
	s := NewSession("quiz_test", "u1", "cheerful", models.QuizModeRegular, sessionQuestions(2))

	// Many simultaneous answers for the same question: exactly one lands,
	// the rest see the explanation state.
	const workers = 16
	results := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Answer("right")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	accepted := 0
	for err := range results {
		if err == nil {
			accepted++
		} else {
			assert.ErrorIs(t, err, ErrNotAwaitingAnswer)
		}
	}
	assert.Equal(t, 1, accepted)

	snap := s.Snapshot()
	assert.Equal(t, 1, snap.Score)
	assert.Equal(t, 15, snap.EarnedPoints)
	assert.Equal(t, StateShowingExplanation, snap.State)
}

func TestRegularModeHasNoDeadline(t *testing.T) {
	s, clock := newTestSession(models.QuizModeRegular, 2)

	clock.advance(10 * time.Minute)
	s.Sync()
	assert.Equal(t, StateAwaitingAnswer, s.State)
	assert.Equal(t, 0, s.Current)
	assert.Equal(t, 0, s.SecondsRemaining())
}
