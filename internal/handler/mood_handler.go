package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"moodyflicks/internal/mood"
	"moodyflicks/internal/service"
)

// MoodHandler handles HTTP requests for moods and mood-based discovery.
type MoodHandler struct {
	catalog *service.CatalogService
	trivia  *service.TriviaService
}

// NewMoodHandler creates a new MoodHandler.
func NewMoodHandler(catalog *service.CatalogService, trivia *service.TriviaService) *MoodHandler {
	return &MoodHandler{catalog: catalog, trivia: trivia}
}

// List returns every available mood label.
// @Summary List moods
// @Tags moods
// @Produce json
// @Success 200 {array} string
// @Router /moods [get]
func (h *MoodHandler) List(c fiber.Ctx) error {
	return c.JSON(mood.All)
}

// Random picks a mood uniformly at random.
// @Summary Random mood
// @Tags moods
// @Produce json
// @Success 200 {object} map[string]string
// @Router /moods/random [get]
func (h *MoodHandler) Random(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"mood": mood.Random()})
}

// Movies returns a page of movies for a mood.
// @Summary Movies for a mood
// @Tags moods
// @Produce json
// @Param mood path string true "Mood label"
// @Param page query int false "Page number" default(1)
// @Success 200 {array} models.Movie
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /moods/{mood}/movies [get]
func (h *MoodHandler) Movies(c fiber.Ctx) error {
	m, ok := mood.Parse(c.Params("mood"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "unknown mood"})
	}

	page := fiber.Query(c, "page", 1)
	movies, err := h.catalog.MoviesForMood(string(m), page)
	if err != nil {
		slog.Error("failed to get mood movies", "mood", m, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to retrieve movies",
		})
	}
	return c.JSON(movies)
}

// Trivia returns a random fact from the mood's pool.
// @Summary Trivia for a mood
// @Tags moods
// @Produce json
// @Param mood path string true "Mood label"
// @Success 200 {object} service.TriviaFact
// @Failure 404 {object} ErrorResponse
// @Router /moods/{mood}/trivia [get]
func (h *MoodHandler) Trivia(c fiber.Ctx) error {
	m, ok := mood.Parse(c.Params("mood"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "unknown mood"})
	}
	return c.JSON(h.trivia.ForMood(string(m)))
}
