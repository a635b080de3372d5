package handler

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"moodyflicks/internal/service"
)

// MovieHandler handles HTTP requests for the movie catalog.
type MovieHandler struct {
	svc *service.CatalogService
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(svc *service.CatalogService) *MovieHandler {
	return &MovieHandler{svc: svc}
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Health returns service health status.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *MovieHandler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "moodyflicks",
	})
}

// Trending returns today's trending movies.
// @Summary Trending movies
// @Tags movies
// @Produce json
// @Success 200 {array} models.Movie
// @Failure 500 {object} ErrorResponse
// @Router /movies/trending [get]
func (h *MovieHandler) Trending(c fiber.Ctx) error {
	movies, err := h.svc.Trending()
	if err != nil {
		slog.Error("failed to get trending movies", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to retrieve trending movies",
		})
	}
	return c.JSON(movies)
}

// Detail returns detailed info for a single movie.
// @Summary Get movie detail
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} models.MovieDetail
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /movies/{id} [get]
func (h *MovieHandler) Detail(c fiber.Ctx) error {
	id, err := movieID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid movie ID"})
	}

	detail, err := h.svc.Detail(id)
	if err != nil {
		slog.Error("failed to get movie detail", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to retrieve movie details",
		})
	}
	return c.JSON(detail)
}

// Credits returns the cast and crew of a movie.
// @Summary Get movie credits
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} models.Credits
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /movies/{id}/credits [get]
func (h *MovieHandler) Credits(c fiber.Ctx) error {
	id, err := movieID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid movie ID"})
	}

	credits, err := h.svc.Credits(id)
	if err != nil {
		slog.Error("failed to get credits", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to retrieve credits",
		})
	}
	return c.JSON(credits)
}

// Similar returns movies similar to the given one.
// @Summary Get similar movies
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {array} models.Movie
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /movies/{id}/similar [get]
func (h *MovieHandler) Similar(c fiber.Ctx) error {
	id, err := movieID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid movie ID"})
	}

	movies, err := h.svc.Similar(id)
	if err != nil {
		slog.Error("failed to get similar movies", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to retrieve similar movies",
		})
	}
	return c.JSON(movies)
}

// MoodMeter returns the movie's top mood-affinity percentages.
// @Summary Get movie mood meter
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {array} models.MoodScore
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /movies/{id}/mood-meter [get]
func (h *MovieHandler) MoodMeter(c fiber.Ctx) error {
	id, err := movieID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid movie ID"})
	}

	scores, err := h.svc.MoodMeter(id)
	if err != nil {
		slog.Error("failed to compute mood meter", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to compute mood meter",
		})
	}
	return c.JSON(scores)
}

func movieID(c fiber.Ctx) (int, error) {
	return strconv.Atoi(c.Params("id"))
}
