package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"moodyflicks/internal/service"
)

// movieIDRequest is the shared body for progress mutations keyed by movie.
type movieIDRequest struct {
	MovieID int `json:"movie_id"`
}

// rateRequest is the body for rating a movie.
type rateRequest struct {
	MovieID int  `json:"movie_id"`
	Liked   bool `json:"liked"`
}

// ProgressHandler handles HTTP requests for the gamification ledger.
type ProgressHandler struct {
	svc *service.ProgressService
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(svc *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{svc: svc}
}

// Get returns the user's progress aggregate.
// @Summary Get user progress
// @Tags progress
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /users/{userId}/progress [get]
func (h *ProgressHandler) Get(c fiber.Ctx) error {
	userID := c.Params("userId")

	progress, err := h.svc.Progress(c.Context(), userID)
	if err != nil {
		slog.Error("failed to get progress", "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to retrieve progress",
		})
	}

	return c.JSON(fiber.Map{
		"points":            progress.Points,
		"level":             progress.Level(),
		"watched_movie_ids": progress.WatchedMovieIDs,
		"rated_movie_ids":   progress.RatedMovieIDs,
		"saved_movie_ids":   progress.SavedMovieIDs,
		"achievements":      progress.Achievements,
	})
}

// MarkWatched marks a movie as watched.
// @Summary Mark movie watched
// @Tags progress
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param body body movieIDRequest true "Movie to mark"
// @Success 200 {object} models.ProgressUpdate
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{userId}/progress/watched [post]
func (h *ProgressHandler) MarkWatched(c fiber.Ctx) error {
	userID := c.Params("userId")

	var req movieIDRequest
	if err := c.Bind().JSON(&req); err != nil || req.MovieID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "movie_id is required"})
	}

	update, err := h.svc.MarkWatched(c.Context(), userID, req.MovieID)
	if err != nil {
		slog.Error("failed to mark watched", "user_id", userID, "movie_id", req.MovieID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to update progress",
		})
	}
	return c.JSON(update)
}

// Rate records a like/dislike rating for a movie.
// @Summary Rate a movie
// @Tags progress
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param body body rateRequest true "Rating"
// @Success 200 {object} models.ProgressUpdate
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{userId}/progress/ratings [post]
func (h *ProgressHandler) Rate(c fiber.Ctx) error {
	userID := c.Params("userId")

	var req rateRequest
	if err := c.Bind().JSON(&req); err != nil || req.MovieID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "movie_id is required"})
	}

	update, err := h.svc.RateMovie(c.Context(), userID, req.MovieID, req.Liked)
	if err != nil {
		slog.Error("failed to rate movie", "user_id", userID, "movie_id", req.MovieID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to update progress",
		})
	}
	return c.JSON(update)
}

// ToggleSaved adds or removes a movie from the watchlist.
// @Summary Toggle saved movie
// @Tags progress
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param body body movieIDRequest true "Movie to toggle"
// @Success 200 {object} models.ProgressUpdate
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{userId}/progress/saved [post]
func (h *ProgressHandler) ToggleSaved(c fiber.Ctx) error {
	userID := c.Params("userId")

	var req movieIDRequest
	if err := c.Bind().JSON(&req); err != nil || req.MovieID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "movie_id is required"})
	}

	update, err := h.svc.ToggleSaved(c.Context(), userID, req.MovieID)
	if err != nil {
		slog.Error("failed to toggle saved", "user_id", userID, "movie_id", req.MovieID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to update progress",
		})
	}
	return c.JSON(update)
}

// Share records a movie share.
// @Summary Record a share
// @Tags progress
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} models.ProgressUpdate
// @Failure 500 {object} ErrorResponse
// @Router /users/{userId}/progress/share [post]
func (h *ProgressHandler) Share(c fiber.Ctx) error {
	userID := c.Params("userId")

	update, err := h.svc.RecordShare(c.Context(), userID)
	if err != nil {
		slog.Error("failed to record share", "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to update progress",
		})
	}
	return c.JSON(update)
}
