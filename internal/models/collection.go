package models

import "time"

// Collection is a user-defined named list of movie IDs.
type Collection struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	MovieIDs    []int     `json:"movie_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasMovie reports whether movieID is already in the collection.
func (c *Collection) HasMovie(movieID int) bool { return containsInt(c.MovieIDs, movieID) }

// CreateCollectionRequest is the request body for creating a collection.
type CreateCollectionRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateCollectionRequest is the patch body for updating a collection.
// Nil fields are left unchanged.
type UpdateCollectionRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// AddMovieRequest is the request body for adding a movie to a collection.
type AddMovieRequest struct {
	MovieID int `json:"movie_id"`
}

// CollectionStats summarizes a collection for the PDF export.
type CollectionStats struct {
	TotalMovies   int     `json:"total_movies"`
	AverageRating float64 `json:"average_rating"`
	OldestYear    int     `json:"oldest_year"`
	NewestYear    int     `json:"newest_year"`
}
