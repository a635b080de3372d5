package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"moodyflicks/internal/models"
	"moodyflicks/internal/quiz"
	"moodyflicks/internal/service"
)

// QuizHandler handles HTTP requests for quiz sessions.
type QuizHandler struct {
	svc *service.QuizService
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(svc *service.QuizService) *QuizHandler {
	return &QuizHandler{svc: svc}
}

// Start begins a new quiz session for a mood.
// @Summary Start a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param body body models.StartQuizRequest true "Mood and mode"
// @Success 201 {object} service.QuizSessionView
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{userId}/quizzes [post]
func (h *QuizHandler) Start(c fiber.Ctx) error {
	userID := c.Params("userId")

	var req models.StartQuizRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	view, err := h.svc.StartSession(c.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownMood) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "unknown mood"})
		}
		slog.Error("failed to start quiz", "user_id", userID, "mood", req.Mood, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to start quiz",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// Get returns the current snapshot of a session.
// @Summary Get quiz session
// @Tags quizzes
// @Produce json
// @Param userId path string true "User ID"
// @Param sessionId path string true "Session ID"
// @Success 200 {object} service.QuizSessionView
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{userId}/quizzes/{sessionId} [get]
func (h *QuizHandler) Get(c fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	view, completion, err := h.svc.Session(c.Context(), sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "quiz session not found"})
		}
		slog.Error("failed to get quiz session", "session_id", sessionID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to retrieve quiz session",
		})
	}

	if completion != nil {
		return c.JSON(fiber.Map{"session": view, "completion": completion})
	}
	return c.JSON(view)
}

// Answer submits the answer for the session's current question.
// @Summary Answer current question
// @Tags quizzes
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param sessionId path string true "Session ID"
// @Param body body models.AnswerRequest true "Answer"
// @Success 200 {object} service.QuizAnswerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{userId}/quizzes/{sessionId}/answers [post]
func (h *QuizHandler) Answer(c fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	var req models.AnswerRequest
	if err := c.Bind().JSON(&req); err != nil || req.Answer == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "answer is required"})
	}

	resp, err := h.svc.Answer(c.Context(), sessionID, req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "quiz session not found"})
		case errors.Is(err, quiz.ErrNotAwaitingAnswer):
			return c.Status(fiber.StatusConflict).JSON(ErrorResponse{Error: "session is not awaiting an answer"})
		}
		slog.Error("failed to answer quiz question", "session_id", sessionID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to record answer",
		})
	}
	return c.JSON(resp)
}

// Stats returns the user's cumulative quiz record.
// @Summary Get quiz stats
// @Tags quizzes
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /users/{userId}/quiz-stats [get]
func (h *QuizHandler) Stats(c fiber.Ctx) error {
	userID := c.Params("userId")

	stats, err := h.svc.Stats(c.Context(), userID)
	if err != nil {
		slog.Error("failed to get quiz stats", "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to retrieve quiz stats",
		})
	}

	return c.JSON(fiber.Map{
		"total_quizzes":   stats.TotalQuizzes,
		"correct_answers": stats.CorrectAnswers,
		"total_questions": stats.TotalQuestions,
		"best_score":      stats.BestScore,
		"streaks":         stats.Streaks,
		"accuracy":        stats.Accuracy(),
		"last_quiz_date":  stats.LastQuizDate,
	})
}
