package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"moodyflicks/internal/models"
	"moodyflicks/internal/mood"
	"moodyflicks/internal/quiz"
	"moodyflicks/internal/repository"
)

var (
	// ErrSessionNotFound is returned for unknown or expired session IDs.
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrUnknownMood is returned when a quiz is requested for a label
	// outside the mood enumeration.
	ErrUnknownMood = errors.New("unknown mood")
)

// QuizSessionView is the client-facing snapshot of a session. The current
// question is presented without its answer or explanation.
type QuizSessionView struct {
	ID               string            `json:"id"`
	Mood             string            `json:"mood"`
	Mode             models.QuizMode   `json:"mode"`
	State            string            `json:"state"`
	QuestionNumber   int               `json:"question_number"`
	TotalQuestions   int               `json:"total_questions"`
	Score            int               `json:"score"`
	EarnedPoints     int               `json:"earned_points"`
	SecondsRemaining int               `json:"seconds_remaining,omitempty"`
	Question         *QuizQuestionView `json:"question,omitempty"`
}

// QuizQuestionView is a question as shown to the player.
type QuizQuestionView struct {
	Question   string              `json:"question"`
	Options    []string            `json:"options"`
	ImageURL   string              `json:"image_url,omitempty"`
	Type       models.QuestionType `json:"type"`
	Difficulty models.Difficulty   `json:"difficulty"`
	Points     int                 `json:"points"`
}

// QuizAnswerResponse is the outcome of one answer, with the completion
// summary attached when it was the last question.
type QuizAnswerResponse struct {
	quiz.AnswerResult
	Session    *QuizSessionView `json:"session"`
	Completion *QuizCompletion  `json:"completion,omitempty"`
}

// QuizCompletion summarizes a finished quiz.
type QuizCompletion struct {
	Score        int                  `json:"score"`
	Total        int                  `json:"total"`
	EarnedPoints int                  `json:"earned_points"`
	Stats        *models.QuizStats    `json:"stats"`
	Unlocked     []models.Achievement `json:"unlocked,omitempty"`
	Notices      []models.Notice      `json:"notices,omitempty"`
}

// QuizService generates quizzes from the catalog and runs the in-flight
// sessions. Sessions live in memory; the cumulative stats live in the
// state store.
type QuizService struct {
	store    repository.StateStore
	catalog  *CatalogService
	progress *ProgressService

	mu       sync.Mutex
	sessions map[string]*quiz.Session

	now func() time.Time
}

// NewQuizService creates a new QuizService.
func NewQuizService(store repository.StateStore, catalog *CatalogService, progress *ProgressService) *QuizService {
	return &QuizService{
		store:    store,
		catalog:  catalog,
		progress: progress,
		sessions: make(map[string]*quiz.Session),
		now:      time.Now,
	}
}

// StartSession builds a quiz for the mood and registers a new session.
func (s *QuizService) StartSession(ctx context.Context, userID string, req models.StartQuizRequest) (*QuizSessionView, error) {
	m, ok := mood.Parse(req.Mood)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMood, req.Mood)
	}

	mode := req.Mode
	switch mode {
	case models.QuizModeRegular, models.QuizModeTimed, models.QuizModeChallenge:
	case "":
		mode = models.QuizModeRegular
	default:
		return nil, fmt.Errorf("unknown quiz mode %q", mode)
	}

	movies, err := s.catalog.MoviesForMood(string(m), 1)
	if err != nil {
		return nil, err
	}

	questions, err := quiz.Generate(string(m), movies)
	if err != nil {
		return nil, err
	}

	session := quiz.NewSession("quiz_"+uuid.NewString(), userID, string(m), mode, questions)

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	slog.Info("quiz session started", "session_id", session.ID, "user_id", userID, "mood", m, "mode", mode)
	return s.view(session), nil
}

// Session returns the current snapshot of a session, applying any timed
// transitions that came due since the last access.
func (s *QuizService) Session(ctx context.Context, sessionID string) (*QuizSessionView, *QuizCompletion, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, nil, err
	}

	var completion *QuizCompletion
	if session.Completed() {
		completion, err = s.finish(ctx, session)
		if err != nil {
			return nil, nil, err
		}
	}
	return s.view(session), completion, nil
}

// Answer submits the answer for the session's current question.
func (s *QuizService) Answer(ctx context.Context, sessionID, answer string) (*QuizAnswerResponse, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	result, err := session.Answer(answer)
	if err != nil {
		return nil, err
	}

	resp := &QuizAnswerResponse{
		AnswerResult: *result,
		Session:      s.view(session),
	}
	if result.Completed {
		completion, err := s.finish(ctx, session)
		if err != nil {
			return nil, err
		}
		resp.Completion = completion
	}
	return resp, nil
}

// Stats returns the user's cumulative quiz record.
func (s *QuizService) Stats(ctx context.Context, userID string) (*models.QuizStats, error) {
	stats := &models.QuizStats{}
	if err := loadSlot(ctx, s.store, userID, repository.SlotQuizStats, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *QuizService) lookup(sessionID string) (*quiz.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// finish folds a completed session into the user's stats, awards the earned
// points and evaluates the perfect-score and day-streak achievements. The
// session is removed so a second call cannot double count.
func (s *QuizService) finish(ctx context.Context, session *quiz.Session) (*QuizCompletion, error) {
	s.mu.Lock()
	if _, ok := s.sessions[session.ID]; !ok {
		s.mu.Unlock()
		return nil, nil
	}
	delete(s.sessions, session.ID)
	s.mu.Unlock()

	snap := session.Snapshot()
	stats, err := s.Stats(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	today := s.now().Format(dayFormat)
	newDay := stats.LastQuizDate != today

	stats.TotalQuizzes++
	stats.CorrectAnswers += snap.Score
	stats.TotalQuestions += len(session.Questions)
	if snap.Score > stats.BestScore {
		stats.BestScore = snap.Score
	}
	if newDay {
		stats.Streaks++
	}
	stats.LastQuizDate = today

	if err := saveSlot(ctx, s.store, session.UserID, repository.SlotQuizStats, stats); err != nil {
		return nil, err
	}

	completion := &QuizCompletion{
		Score:        snap.Score,
		Total:        len(session.Questions),
		EarnedPoints: snap.EarnedPoints,
		Stats:        stats,
		Notices: []models.Notice{
			{
				Title:       "Quiz Completed!",
				Description: fmt.Sprintf("You scored %d/%d and earned %d points!", snap.Score, len(session.Questions), snap.EarnedPoints),
			},
		},
	}

	if snap.Score == len(session.Questions) {
		update, err := s.progress.UnlockAchievement(ctx, session.UserID, models.AchievementQuizMaster)
		if err != nil {
			return nil, err
		}
		if !update.NoOp {
			completion.Unlocked = append(completion.Unlocked, update.Unlocked...)
			completion.Notices = append(completion.Notices, update.Notices...)
		}
	}

	if newDay && stats.Streaks >= 3 {
		update, err := s.progress.UnlockAchievement(ctx, session.UserID, models.AchievementQuizStreak)
		if err != nil {
			return nil, err
		}
		if !update.NoOp {
			completion.Unlocked = append(completion.Unlocked, update.Unlocked...)
			completion.Notices = append(completion.Notices, update.Notices...)
		}
	}

	if snap.EarnedPoints > 0 {
		if _, err := s.progress.AwardPoints(ctx, session.UserID, snap.EarnedPoints); err != nil {
			return nil, err
		}
	}

	slog.Info("quiz completed", "session_id", session.ID, "user_id", session.UserID,
		"score", snap.Score, "points", snap.EarnedPoints)
	return completion, nil
}

func (s *QuizService) view(session *quiz.Session) *QuizSessionView {
	snap := session.Snapshot()
	view := &QuizSessionView{
		ID:               session.ID,
		Mood:             session.Mood,
		Mode:             session.Mode,
		State:            string(snap.State),
		QuestionNumber:   snap.Current + 1,
		TotalQuestions:   len(session.Questions),
		Score:            snap.Score,
		EarnedPoints:     snap.EarnedPoints,
		SecondsRemaining: snap.SecondsRemaining,
	}
	if q := snap.Question; q != nil {
		view.Question = &QuizQuestionView{
			Question:   q.Question,
			Options:    q.Options,
			ImageURL:   q.ImageURL,
			Type:       q.Type,
			Difficulty: q.Difficulty,
			Points:     q.Points,
		}
	}
	return view
}
