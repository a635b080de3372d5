package handler

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"moodyflicks/internal/models"
	"moodyflicks/internal/service"
)

// CollectionHandler handles HTTP requests for movie collections.
type CollectionHandler struct {
	svc    *service.CollectionService
	export *service.ExportService
}

// NewCollectionHandler creates a new CollectionHandler.
func NewCollectionHandler(svc *service.CollectionService, export *service.ExportService) *CollectionHandler {
	return &CollectionHandler{svc: svc, export: export}
}

// List returns the user's collections.
// @Summary List collections
// @Tags collections
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} models.Collection
// @Failure 500 {object} ErrorResponse
// @Router /users/{userId}/collections [get]
func (h *CollectionHandler) List(c fiber.Ctx) error {
	userID := c.Params("userId")

	collections, err := h.svc.List(c.Context(), userID)
	if err != nil {
		slog.Error("failed to list collections", "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to retrieve collections",
		})
	}
	return c.JSON(collections)
}

// Get returns one collection.
// @Summary Get a collection
// @Tags collections
// @Produce json
// @Param userId path string true "User ID"
// @Param id path string true "Collection ID"
// @Success 200 {object} models.Collection
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{userId}/collections/{id} [get]
func (h *CollectionHandler) Get(c fiber.Ctx) error {
	userID := c.Params("userId")

	collection, err := h.svc.Get(c.Context(), userID, c.Params("id"))
	if err != nil {
		return h.collectionError(c, userID, err)
	}
	return c.JSON(collection)
}

// Create creates a new collection.
// @Summary Create a collection
// @Tags collections
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param body body models.CreateCollectionRequest true "Collection"
// @Success 201 {object} models.Collection
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{userId}/collections [post]
func (h *CollectionHandler) Create(c fiber.Ctx) error {
	userID := c.Params("userId")

	var req models.CreateCollectionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	collection, err := h.svc.Create(c.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrNameRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "collection name is required"})
		}
		slog.Error("failed to create collection", "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to create collection",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(collection)
}

// Update renames or redescribes a collection.
// @Summary Update a collection
// @Tags collections
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param id path string true "Collection ID"
// @Param body body models.UpdateCollectionRequest true "Fields to change"
// @Success 200 {object} models.Collection
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{userId}/collections/{id} [patch]
func (h *CollectionHandler) Update(c fiber.Ctx) error {
	userID := c.Params("userId")

	var req models.UpdateCollectionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	collection, err := h.svc.Update(c.Context(), userID, c.Params("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrNameRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "collection name is required"})
		}
		return h.collectionError(c, userID, err)
	}
	return c.JSON(collection)
}

// Delete removes a collection.
// @Summary Delete a collection
// @Tags collections
// @Produce json
// @Param userId path string true "User ID"
// @Param id path string true "Collection ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{userId}/collections/{id} [delete]
func (h *CollectionHandler) Delete(c fiber.Ctx) error {
	userID := c.Params("userId")

	if err := h.svc.Delete(c.Context(), userID, c.Params("id")); err != nil {
		return h.collectionError(c, userID, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddMovie adds a movie to a collection.
// @Summary Add movie to collection
// @Tags collections
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param id path string true "Collection ID"
// @Param body body models.AddMovieRequest true "Movie to add"
// @Success 200 {object} models.ProgressUpdate
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{userId}/collections/{id}/movies [post]
func (h *CollectionHandler) AddMovie(c fiber.Ctx) error {
	userID := c.Params("userId")

	var req models.AddMovieRequest
	if err := c.Bind().JSON(&req); err != nil || req.MovieID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "movie_id is required"})
	}

	update, err := h.svc.AddMovie(c.Context(), userID, c.Params("id"), req.MovieID)
	if err != nil {
		return h.collectionError(c, userID, err)
	}
	return c.JSON(update)
}

// RemoveMovie removes a movie from a collection.
// @Summary Remove movie from collection
// @Tags collections
// @Produce json
// @Param userId path string true "User ID"
// @Param id path string true "Collection ID"
// @Param movieId path int true "Movie ID"
// @Success 200 {object} models.Collection
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{userId}/collections/{id}/movies/{movieId} [delete]
func (h *CollectionHandler) RemoveMovie(c fiber.Ctx) error {
	userID := c.Params("userId")

	movieID, err := strconv.Atoi(c.Params("movieId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid movie ID"})
	}

	collection, err := h.svc.RemoveMovie(c.Context(), userID, c.Params("id"), movieID)
	if err != nil {
		return h.collectionError(c, userID, err)
	}
	return c.JSON(collection)
}

// Export renders the collection as a PDF.
// @Summary Export collection as PDF
// @Tags collections
// @Produce application/pdf
// @Param userId path string true "User ID"
// @Param id path string true "Collection ID"
// @Param sort query string false "Sort order" Enums(title,rating,date) default(title)
// @Param stats query bool false "Include statistics" default(true)
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{userId}/collections/{id}/export [get]
func (h *CollectionHandler) Export(c fiber.Ctx) error {
	userID := c.Params("userId")

	opts := service.ExportOptions{
		SortBy:       service.ExportSort(c.Query("sort", string(service.ExportSortTitle))),
		IncludeStats: fiber.Query(c, "stats", true),
	}

	data, filename, err := h.export.BuildPDF(c.Context(), userID, c.Params("id"), opts)
	if err != nil {
		return h.collectionError(c, userID, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

func (h *CollectionHandler) collectionError(c fiber.Ctx, userID string, err error) error {
	if errors.Is(err, service.ErrCollectionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "collection not found"})
	}
	slog.Error("collection operation failed", "user_id", userID, "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: "collection operation failed",
	})
}
