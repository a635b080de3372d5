package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodyflicks/internal/models"
	"moodyflicks/internal/repository"
)

func newCollectionService() *CollectionService {
	store := repository.NewMemoryStateStore()
	return NewCollectionService(store, NewProgressService(store))
}

func TestCreateCollection(t *testing.T) {
	svc := newCollectionService()
	ctx := context.Background()

	collection, err := svc.Create(ctx, "u1", models.CreateCollectionRequest{
		Name:        "  Rainy Day Picks  ",
		Description: "For gloomy afternoons",
	})
	require.NoError(t, err)
	assert.Equal(t, "Rainy Day Picks", collection.Name)
	assert.NotEmpty(t, collection.ID)
	assert.Empty(t, collection.MovieIDs)

	list, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, collection.ID, list[0].ID)
}

func TestCreateCollectionRequiresName(t *testing.T) {
	svc := newCollectionService()

	_, err := svc.Create(context.Background(), "u1", models.CreateCollectionRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestUpdateCollection(t *testing.T) {
	svc := newCollectionService()
	ctx := context.Background()

	collection, err := svc.Create(ctx, "u1", models.CreateCollectionRequest{Name: "Old"})
	require.NoError(t, err)

	newName := "New"
	updated, err := svc.Update(ctx, "u1", collection.ID, models.UpdateCollectionRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)

	empty := " "
	_, err = svc.Update(ctx, "u1", collection.ID, models.UpdateCollectionRequest{Name: &empty})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Update(ctx, "u1", "col_missing", models.UpdateCollectionRequest{Name: &newName})
	assert.ErrorIs(t, err, ErrCollectionNotFound)
}

func TestDeleteCollection(t *testing.T) {
	svc := newCollectionService()
	ctx := context.Background()

	collection, err := svc.Create(ctx, "u1", models.CreateCollectionRequest{Name: "Doomed"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "u1", collection.ID))
	assert.ErrorIs(t, svc.Delete(ctx, "u1", collection.ID), ErrCollectionNotFound)

	list, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAddMovieCuratorAchievement(t *testing.T) {
	svc := newCollectionService()
	ctx := context.Background()

	collection, err := svc.Create(ctx, "u1", models.CreateCollectionRequest{Name: "Favorites"})
	require.NoError(t, err)

	// The very first collected movie unlocks curator and its bonus, and
	// still announces the add itself ahead of the achievement.
	update, err := svc.AddMovie(ctx, "u1", collection.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, []models.Achievement{models.AchievementCurator}, update.Unlocked)
	assert.Equal(t, 10, update.PointsEarned)
	assert.Equal(t, 10, update.Progress.Points)
	require.Len(t, update.Notices, 2)
	assert.Equal(t, "Movie Added", update.Notices[0].Title)
	assert.Equal(t, "New Achievement!", update.Notices[1].Title)

	// The second movie is an ordinary add.
	update, err = svc.AddMovie(ctx, "u1", collection.ID, 43)
	require.NoError(t, err)
	assert.Empty(t, update.Unlocked)
	assert.Equal(t, 0, update.PointsEarned)
	require.Len(t, update.Notices, 1)
	assert.Equal(t, "Movie Added", update.Notices[0].Title)
}

func TestAddMovieDuplicateIsNoOp(t *testing.T) {
	svc := newCollectionService()
	ctx := context.Background()

	collection, err := svc.Create(ctx, "u1", models.CreateCollectionRequest{Name: "Favorites"})
	require.NoError(t, err)

	_, err = svc.AddMovie(ctx, "u1", collection.ID, 42)
	require.NoError(t, err)

	update, err := svc.AddMovie(ctx, "u1", collection.ID, 42)
	require.NoError(t, err)
	assert.True(t, update.NoOp)

	got, err := svc.Get(ctx, "u1", collection.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{42}, got.MovieIDs)
}

func TestRemoveMovie(t *testing.T) {
	svc := newCollectionService()
	ctx := context.Background()

	collection, err := svc.Create(ctx, "u1", models.CreateCollectionRequest{Name: "Favorites"})
	require.NoError(t, err)

	_, err = svc.AddMovie(ctx, "u1", collection.ID, 42)
	require.NoError(t, err)
	_, err = svc.AddMovie(ctx, "u1", collection.ID, 43)
	require.NoError(t, err)

	updated, err := svc.RemoveMovie(ctx, "u1", collection.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, []int{43}, updated.MovieIDs)

	// Removing an absent movie leaves the collection unchanged.
	updated, err = svc.RemoveMovie(ctx, "u1", collection.ID, 99)
	require.NoError(t, err)
	assert.Equal(t, []int{43}, updated.MovieIDs)
}

func TestCuratorCountsAcrossCollections(t *testing.T) {
	svc := newCollectionService()
	ctx := context.Background()

	first, err := svc.Create(ctx, "u1", models.CreateCollectionRequest{Name: "First"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, "u1", models.CreateCollectionRequest{Name: "Second"})
	require.NoError(t, err)

	_, err = svc.AddMovie(ctx, "u1", first.ID, 1)
	require.NoError(t, err)

	// The other collection is still non-first across the account.
	update, err := svc.AddMovie(ctx, "u1", second.ID, 2)
	require.NoError(t, err)
	assert.Empty(t, update.Unlocked)
}
