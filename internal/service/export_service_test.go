package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodyflicks/internal/models"
	"moodyflicks/internal/repository"
)

func newExportService() (*ExportService, *CollectionService) {
	store := repository.NewMemoryStateStore()
	collections := NewCollectionService(store, NewProgressService(store))
	return NewExportService(collections, NewCatalogService(nil, nil)), collections
}

func TestBuildPDFEmptyCollection(t *testing.T) {
	svc, collections := newExportService()
	ctx := context.Background()

	collection, err := collections.Create(ctx, "u1", models.CreateCollectionRequest{
		Name:        "Watch Later",
		Description: "Some day",
	})
	require.NoError(t, err)

	data, filename, err := svc.BuildPDF(ctx, "u1", collection.ID, ExportOptions{IncludeStats: true})
	require.NoError(t, err)
	assert.Equal(t, "MoodyFlicks-Watch Later.pdf", filename)
	assert.True(t, len(data) > 0)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestBuildPDFUnknownCollection(t *testing.T) {
	svc, _ := newExportService()

	_, _, err := svc.BuildPDF(context.Background(), "u1", "col_missing", ExportOptions{})
	assert.ErrorIs(t, err, ErrCollectionNotFound)
}

func TestSortMovies(t *testing.T) {
	movies := []*models.MovieDetail{
		{Title: "B", VoteAverage: 7.0, ReleaseDate: "2001-01-01"},
		{Title: "A", VoteAverage: 9.0, ReleaseDate: "1999-01-01"},
		{Title: "C", VoteAverage: 8.0, ReleaseDate: "2010-01-01"},
	}

	sortMovies(movies, ExportSortTitle)
	assert.Equal(t, "A", movies[0].Title)

	sortMovies(movies, ExportSortRating)
	assert.Equal(t, 9.0, movies[0].VoteAverage)

	sortMovies(movies, ExportSortDate)
	assert.Equal(t, "2010-01-01", movies[0].ReleaseDate)
}

func TestCollectionStats(t *testing.T) {
	movies := []*models.MovieDetail{
		{Title: "A", VoteAverage: 6.0, ReleaseDate: "1994-01-01"},
		{Title: "B", VoteAverage: 8.0, ReleaseDate: "2020-01-01"},
	}

	stats := collectionStats(movies)
	assert.Equal(t, 2, stats.TotalMovies)
	assert.Equal(t, 7.0, stats.AverageRating)
	assert.Equal(t, 1994, stats.OldestYear)
	assert.Equal(t, 2020, stats.NewestYear)
}
