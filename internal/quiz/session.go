package quiz

import (
	"errors"
	"sync"
	"time"

	"moodyflicks/internal/models"
)

// SessionState is the explicit state of a running quiz session.
type SessionState string

const (
	StateAwaitingAnswer     SessionState = "awaiting-answer"
	StateShowingExplanation SessionState = "showing-explanation"
	StateCompleted          SessionState = "completed"
)

const (
	// questionTime is the per-question allowance in timed mode.
	questionTime = 30 * time.Second
	// explanationDelay is how long the explanation is shown before the
	// session advances to the next question.
	explanationDelay = 2500 * time.Millisecond
	// timeBonusDivisor converts remaining seconds into bonus points.
	timeBonusDivisor = 3
)

// ErrNotAwaitingAnswer is returned when an answer arrives while the session
// is showing an explanation or already completed.
var ErrNotAwaitingAnswer = errors.New("session is not awaiting an answer")

// Session runs one quiz as a state machine. All timed transitions (answer
// timeout, explanation delay) are evaluated lazily against a single clock on
// every access, so there is no background timer to coordinate. The mutable
// fields are guarded by mu; concurrent requests for the same session
// serialize on it.
type Session struct {
	ID        string
	UserID    string
	Mood      string
	Mode      models.QuizMode
	Questions []models.QuizQuestion

	mu           sync.Mutex
	Current      int
	Score        int
	EarnedPoints int
	State        SessionState

	deadline         time.Time
	explanationUntil time.Time
	now              func() time.Time
}

// AnswerResult reports the outcome of answering one question.
type AnswerResult struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer"`
	PointsEarned  int    `json:"points_earned"`
	Explanation   string `json:"explanation,omitempty"`
	Completed     bool   `json:"completed"`
}

// NewSession starts a session on the given questions.
func NewSession(id, userID, moodLabel string, mode models.QuizMode, questions []models.QuizQuestion) *Session {
	s := &Session{
		ID:        id,
		UserID:    userID,
		Mood:      moodLabel,
		Mode:      mode,
		Questions: questions,
		State:     StateAwaitingAnswer,
		now:       time.Now,
	}
	if mode == models.QuizModeTimed {
		s.deadline = s.now().Add(questionTime)
	}
	return s
}

// WithClock replaces the session's time source. Tests use it to drive the
// timed transitions deterministically.
func (s *Session) WithClock(now func() time.Time) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	if s.Mode == models.QuizModeTimed {
		s.deadline = now().Add(questionTime)
	}
	return s
}

// Sync applies any due timed transitions: a question whose timer ran out
// advances without scoring, and an explanation whose delay elapsed advances
// to the next question.
func (s *Session) Sync() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sync()
}

func (s *Session) sync() {
	for {
		switch s.State {
		case StateShowingExplanation:
			if s.now().Before(s.explanationUntil) {
				return
			}
			s.advance()
		case StateAwaitingAnswer:
			if s.Mode != models.QuizModeTimed || s.now().Before(s.deadline) {
				return
			}
			// Timer exhausted with no answer selected: advance silently.
			s.advance()
		default:
			return
		}
	}
}

// Answer records the answer for the current question and moves the session
// to showing-explanation (or completed on the last question).
func (s *Session) Answer(answer string) (*AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sync()
	if s.State != StateAwaitingAnswer {
		return nil, ErrNotAwaitingAnswer
	}

	q := s.Questions[s.Current]
	result := &AnswerResult{
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
	}

	if answer == q.CorrectAnswer {
		result.Correct = true
		points := q.Points
		if s.Mode == models.QuizModeTimed {
			remaining := int(s.deadline.Sub(s.now()).Seconds())
			if remaining > 0 {
				points += remaining / timeBonusDivisor
			}
		}
		result.PointsEarned = points
		s.Score++
		s.EarnedPoints += points
	}

	if s.Current == len(s.Questions)-1 {
		s.State = StateCompleted
	} else {
		s.State = StateShowingExplanation
		s.explanationUntil = s.now().Add(explanationDelay)
	}
	result.Completed = s.State == StateCompleted
	return result, nil
}

// CurrentQuestion returns the question awaiting an answer, or nil when the
// session has completed.
func (s *Session) CurrentQuestion() *models.QuizQuestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sync()
	if s.State == StateCompleted {
		return nil
	}
	q := s.Questions[s.Current]
	return &q
}

// Completed reports whether every question has been answered or timed out.
func (s *Session) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sync()
	return s.State == StateCompleted
}

// SecondsRemaining returns the time left on the current question in timed
// mode, or 0 otherwise.
func (s *Session) SecondsRemaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.secondsRemaining()
}

func (s *Session) secondsRemaining() int {
	if s.Mode != models.QuizModeTimed || s.State != StateAwaitingAnswer {
		return 0
	}
	remaining := int(s.deadline.Sub(s.now()).Seconds())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Snapshot is a consistent read of a session's mutable state, taken in one
// critical section after applying due transitions.
type Snapshot struct {
	State            SessionState
	Current          int
	Score            int
	EarnedPoints     int
	SecondsRemaining int
	Question         *models.QuizQuestion
}

// Snapshot syncs the session and returns its mutable state as one unit.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sync()
	snap := Snapshot{
		State:            s.State,
		Current:          s.Current,
		Score:            s.Score,
		EarnedPoints:     s.EarnedPoints,
		SecondsRemaining: s.secondsRemaining(),
	}
	if s.State != StateCompleted {
		q := s.Questions[s.Current]
		snap.Question = &q
	}
	return snap
}

func (s *Session) advance() {
	if s.Current >= len(s.Questions)-1 {
		s.State = StateCompleted
		return
	}
	s.Current++
	s.State = StateAwaitingAnswer
	if s.Mode == models.QuizModeTimed {
		s.deadline = s.now().Add(questionTime)
	}
}
