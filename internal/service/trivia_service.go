package service

import (
	"context"
	"log/slog"

	"moodyflicks/internal/models"
	"moodyflicks/internal/repository"
	"moodyflicks/internal/trivia"
)

// TriviaFact is one fact served to the client.
type TriviaFact struct {
	Fact    string `json:"fact"`
	Mood    string `json:"mood,omitempty"`
	MovieID int    `json:"movie_id,omitempty"`
}

// TriviaLikeResult reports the outcome of liking a fact.
type TriviaLikeResult struct {
	PointsEarned int             `json:"points_earned"`
	NoOp         bool            `json:"no_op"`
	Notices      []models.Notice `json:"notices,omitempty"`
}

// TriviaService serves movie facts and tracks which ones a user has liked.
type TriviaService struct {
	store    repository.StateStore
	catalog  *CatalogService
	progress *ProgressService
}

// NewTriviaService creates a new TriviaService.
func NewTriviaService(store repository.StateStore, catalog *CatalogService, progress *ProgressService) *TriviaService {
	return &TriviaService{store: store, catalog: catalog, progress: progress}
}

// ForMovie returns a fact derived from one movie's catalog record.
func (s *TriviaService) ForMovie(movieID int) (*TriviaFact, error) {
	detail, err := s.catalog.Detail(movieID)
	if err != nil {
		return nil, err
	}
	return &TriviaFact{Fact: trivia.FromMovie(detail), MovieID: movieID}, nil
}

// ForMood returns a random fact from the mood's curated pool.
func (s *TriviaService) ForMood(moodLabel string) *TriviaFact {
	return &TriviaFact{Fact: trivia.ForMood(moodLabel), Mood: moodLabel}
}

// General returns a random general-cinema fact.
func (s *TriviaService) General() *TriviaFact {
	return &TriviaFact{Fact: trivia.General()}
}

// Like records that the user liked a fact, awarding a small point bonus the
// first time. Facts are keyed by their text; liking twice is a no-op.
func (s *TriviaService) Like(ctx context.Context, userID, fact string) (*TriviaLikeResult, error) {
	liked := []string{}
	if err := loadSlot(ctx, s.store, userID, repository.SlotLikedTrivia, &liked); err != nil {
		return nil, err
	}

	for _, f := range liked {
		if f == fact {
			return &TriviaLikeResult{
				NoOp: true,
				Notices: []models.Notice{
					{Title: "Already Liked", Description: "You've already liked this trivia."},
				},
			}, nil
		}
	}

	liked = append(liked, fact)
	if err := saveSlot(ctx, s.store, userID, repository.SlotLikedTrivia, liked); err != nil {
		return nil, err
	}
	if _, err := s.progress.AwardPoints(ctx, userID, pointsTriviaLike); err != nil {
		return nil, err
	}

	slog.Debug("trivia liked", "user_id", userID)
	return &TriviaLikeResult{
		PointsEarned: pointsTriviaLike,
		Notices: []models.Notice{
			{Title: "Trivia Liked!", Description: "You've earned 2 points."},
		},
	}, nil
}
