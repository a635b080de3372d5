package trivia

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"moodyflicks/internal/models"
)

func TestForMoodKnownAndUnknown(t *testing.T) {
	fact := ForMood("thrilling")
	assert.Contains(t, moodFacts["thrilling"], fact)

	// Unknown moods fall back to the cheerful pool.
	fact = ForMood("bored")
	assert.Contains(t, moodFacts["cheerful"], fact)
}

func TestGeneral(t *testing.T) {
	assert.Contains(t, generalFacts, General())
}

func TestFromMovieWithFullRecord(t *testing.T) {
	movie := &models.MovieDetail{
		ID:          550,
		Title:       "Fight Club",
		ReleaseDate: "1999-10-15",
		VoteAverage: 8.4,
		Runtime:     139,
		Budget:      63000000,
		Genres:      []models.Genre{{ID: 18, Name: "Drama"}},
		ProductionCountries: []models.Country{
			{ISO: "US", Name: "United States of America"},
		},
		Credits: &models.Credits{
			Cast: []models.CastMember{
				{Name: "Edward Norton"}, {Name: "Brad Pitt"}, {Name: "Helena Bonham Carter"}, {Name: "Meat Loaf"},
			},
			Crew: []models.CrewMember{
				{Name: "David Fincher", Job: "Director"},
			},
		},
	}

	for i := 0; i < 30; i++ {
		fact := FromMovie(movie)
		assert.Contains(t, fact, "Fight Club")
	}
}

func TestFromMovieFallbacks(t *testing.T) {
	movie := &models.MovieDetail{Title: "Obscure Film", ReleaseDate: "2001-01-01"}

	assert.Equal(t, "an acclaimed director", directorName(movie))
	assert.Equal(t, "not publicly disclosed", budgetText(movie))
	assert.Equal(t, "talented actors", topCast(movie))
	assert.Equal(t, "various locations", countryNames(movie))
}

func TestTopCastLimit(t *testing.T) {
	movie := &models.MovieDetail{
		Credits: &models.Credits{
			Cast: []models.CastMember{
				{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"},
			},
		},
	}
	assert.Equal(t, "A, B, C", topCast(movie))
}
