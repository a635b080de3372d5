package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"moodyflicks/internal/service"
)

// DailyHandler handles HTTP requests for the daily challenge.
type DailyHandler struct {
	svc *service.DailyService
}

// NewDailyHandler creates a new DailyHandler.
func NewDailyHandler(svc *service.DailyService) *DailyHandler {
	return &DailyHandler{svc: svc}
}

// Get returns today's challenge movie and the user's completion state.
// @Summary Get daily challenge
// @Tags daily
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} models.DailyChallenge
// @Failure 500 {object} ErrorResponse
// @Router /users/{userId}/daily [get]
func (h *DailyHandler) Get(c fiber.Ctx) error {
	userID := c.Params("userId")

	challenge, err := h.svc.Challenge(c.Context(), userID)
	if err != nil {
		slog.Error("failed to get daily challenge", "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to retrieve daily challenge",
		})
	}
	return c.JSON(challenge)
}

// Complete marks today's challenge as done.
// @Summary Complete daily challenge
// @Tags daily
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} models.DailyCompletionResult
// @Failure 500 {object} ErrorResponse
// @Router /users/{userId}/daily/complete [post]
func (h *DailyHandler) Complete(c fiber.Ctx) error {
	userID := c.Params("userId")

	result, err := h.svc.Complete(c.Context(), userID)
	if err != nil {
		slog.Error("failed to complete daily challenge", "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to complete daily challenge",
		})
	}
	return c.JSON(result)
}
