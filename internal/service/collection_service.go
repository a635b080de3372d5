package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"moodyflicks/internal/models"
	"moodyflicks/internal/repository"
)

var (
	// ErrCollectionNotFound is returned when no collection has the given ID.
	ErrCollectionNotFound = errors.New("collection not found")
	// ErrNameRequired is returned when a collection name is empty after
	// trimming whitespace.
	ErrNameRequired = errors.New("collection name is required")
)

// CollectionService manages a user's named movie collections. The full list
// is kept as one JSON slot per user and rewritten on every mutation.
type CollectionService struct {
	store    repository.StateStore
	progress *ProgressService
}

// NewCollectionService creates a new CollectionService.
func NewCollectionService(store repository.StateStore, progress *ProgressService) *CollectionService {
	return &CollectionService{store: store, progress: progress}
}

// List returns the user's collections, oldest first.
func (s *CollectionService) List(ctx context.Context, userID string) ([]models.Collection, error) {
	collections := []models.Collection{}
	if err := loadSlot(ctx, s.store, userID, repository.SlotCollections, &collections); err != nil {
		return nil, err
	}
	return collections, nil
}

// Get returns a single collection by ID.
func (s *CollectionService) Get(ctx context.Context, userID, collectionID string) (*models.Collection, error) {
	collections, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range collections {
		if collections[i].ID == collectionID {
			return &collections[i], nil
		}
	}
	return nil, ErrCollectionNotFound
}

// Create adds a new empty collection. Names are trimmed and must be
// non-empty; duplicates across collections are allowed.
func (s *CollectionService) Create(ctx context.Context, userID string, req models.CreateCollectionRequest) (*models.Collection, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	collections, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	collection := models.Collection{
		ID:          "col_" + uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		MovieIDs:    []int{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	collections = append(collections, collection)

	if err := saveSlot(ctx, s.store, userID, repository.SlotCollections, collections); err != nil {
		return nil, err
	}
	slog.Info("collection created", "user_id", userID, "collection_id", collection.ID, "name", name)
	return &collection, nil
}

// Update applies a partial rename/redescribe to a collection.
func (s *CollectionService) Update(ctx context.Context, userID, collectionID string, req models.UpdateCollectionRequest) (*models.Collection, error) {
	collections, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range collections {
		if collections[i].ID != collectionID {
			continue
		}
		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return nil, ErrNameRequired
			}
			collections[i].Name = name
		}
		if req.Description != nil {
			collections[i].Description = strings.TrimSpace(*req.Description)
		}
		collections[i].UpdatedAt = time.Now().UTC()

		if err := saveSlot(ctx, s.store, userID, repository.SlotCollections, collections); err != nil {
			return nil, err
		}
		return &collections[i], nil
	}
	return nil, ErrCollectionNotFound
}

// Delete removes a collection. The movies inside simply stop being listed;
// no other state references them.
func (s *CollectionService) Delete(ctx context.Context, userID, collectionID string) error {
	collections, err := s.List(ctx, userID)
	if err != nil {
		return err
	}

	kept := collections[:0]
	for _, c := range collections {
		if c.ID != collectionID {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(collections) {
		return ErrCollectionNotFound
	}

	if err := saveSlot(ctx, s.store, userID, repository.SlotCollections, kept); err != nil {
		return err
	}
	slog.Info("collection deleted", "user_id", userID, "collection_id", collectionID)
	return nil
}

// AddMovie inserts a movie into a collection. Adding a movie already present
// is a no-op. The user's very first collected movie across all collections
// unlocks the curator achievement.
func (s *CollectionService) AddMovie(ctx context.Context, userID, collectionID string, movieID int) (*models.ProgressUpdate, error) {
	collections, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalBefore := 0
	for _, c := range collections {
		totalBefore += len(c.MovieIDs)
	}

	idx := -1
	for i := range collections {
		if collections[i].ID == collectionID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrCollectionNotFound
	}

	if collections[idx].HasMovie(movieID) {
		progress, err := s.progress.Progress(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &models.ProgressUpdate{
			Progress: progress,
			NoOp:     true,
			Notices: []models.Notice{
				{Title: "Already in Collection", Description: "This movie is already in the collection."},
			},
		}, nil
	}

	collections[idx].MovieIDs = append(collections[idx].MovieIDs, movieID)
	collections[idx].UpdatedAt = time.Now().UTC()
	if err := saveSlot(ctx, s.store, userID, repository.SlotCollections, collections); err != nil {
		return nil, err
	}

	addNotice := models.Notice{Title: "Movie Added", Description: "Movie added to your collection."}

	if totalBefore == 0 {
		update, err := s.progress.UnlockAchievement(ctx, userID, models.AchievementCurator)
		if err != nil {
			return nil, err
		}
		if !update.NoOp {
			total, err := s.progress.AwardPoints(ctx, userID, pointsCurator)
			if err != nil {
				return nil, err
			}
			update.Progress.Points = total
			update.PointsEarned += pointsCurator
		}
		update.Notices = append([]models.Notice{addNotice}, update.Notices...)
		return update, nil
	}

	progress, err := s.progress.Progress(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &models.ProgressUpdate{
		Progress: progress,
		Notices:  []models.Notice{addNotice},
	}, nil
}

// RemoveMovie takes a movie out of a collection. Removing a movie that is
// not present is a no-op.
func (s *CollectionService) RemoveMovie(ctx context.Context, userID, collectionID string, movieID int) (*models.Collection, error) {
	collections, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range collections {
		if collections[i].ID != collectionID {
			continue
		}
		kept := collections[i].MovieIDs[:0]
		for _, id := range collections[i].MovieIDs {
			if id != movieID {
				kept = append(kept, id)
			}
		}
		collections[i].MovieIDs = kept
		collections[i].UpdatedAt = time.Now().UTC()

		if err := saveSlot(ctx, s.store, userID, repository.SlotCollections, collections); err != nil {
			return nil, err
		}
		return &collections[i], nil
	}
	return nil, ErrCollectionNotFound
}
