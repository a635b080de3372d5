package handler

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"moodyflicks/internal/service"
)

// likeRequest is the body for liking a trivia fact.
type likeRequest struct {
	Fact string `json:"fact"`
}

// TriviaHandler handles HTTP requests for trivia facts.
type TriviaHandler struct {
	svc *service.TriviaService
}

// NewTriviaHandler creates a new TriviaHandler.
func NewTriviaHandler(svc *service.TriviaService) *TriviaHandler {
	return &TriviaHandler{svc: svc}
}

// Get returns a trivia fact. With a movie_id query it derives the fact from
// that movie; otherwise it serves general cinema trivia.
// @Summary Get a trivia fact
// @Tags trivia
// @Produce json
// @Param movie_id query int false "Movie ID to derive the fact from"
// @Success 200 {object} service.TriviaFact
// @Failure 500 {object} ErrorResponse
// @Router /trivia [get]
func (h *TriviaHandler) Get(c fiber.Ctx) error {
	if raw := c.Query("movie_id"); raw != "" {
		movieID, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid movie ID"})
		}
		fact, err := h.svc.ForMovie(movieID)
		if err != nil {
			slog.Error("failed to build movie trivia", "movie_id", movieID, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
				Error: "failed to retrieve trivia",
			})
		}
		return c.JSON(fact)
	}
	return c.JSON(h.svc.General())
}

// Like records that the user liked a fact.
// @Summary Like a trivia fact
// @Tags trivia
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param body body likeRequest true "Fact text"
// @Success 200 {object} service.TriviaLikeResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{userId}/trivia/likes [post]
func (h *TriviaHandler) Like(c fiber.Ctx) error {
	userID := c.Params("userId")

	var req likeRequest
	if err := c.Bind().JSON(&req); err != nil || req.Fact == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "fact is required"})
	}

	result, err := h.svc.Like(c.Context(), userID, req.Fact)
	if err != nil {
		slog.Error("failed to like trivia", "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to like trivia",
		})
	}
	return c.JSON(result)
}
