// Package mood holds the static mood-to-catalog mapping and the mood
// affinity scorer shared by the recommendation, mood-meter and quiz flows.
package mood

import (
	"math/rand"
	"sort"
	"strings"

	"moodyflicks/internal/models"
)

// Mood is one of the eight fixed labels used to filter and recommend movies.
type Mood string

const (
	Cheerful    Mood = "cheerful"
	Reflective  Mood = "reflective"
	Gloomy      Mood = "gloomy"
	Humorous    Mood = "humorous"
	Adventurous Mood = "adventurous"
	Romantic    Mood = "romantic"
	Thrilling   Mood = "thrilling"
	Relaxed     Mood = "relaxed"
)

// All lists every mood in a stable order.
var All = []Mood{Cheerful, Reflective, Gloomy, Humorous, Adventurous, Romantic, Thrilling, Relaxed}

// Mapping pairs a mood with the TMDB genre IDs and keyword substrings used
// to discover matching movies.
type Mapping struct {
	GenreIDs []int
	Keywords []string
}

// discoverMap drives movie discovery per mood.
var discoverMap = map[Mood]Mapping{
	Cheerful:    {GenreIDs: []int{35, 10751}, Keywords: []string{"feel-good", "happy"}},
	Reflective:  {GenreIDs: []int{18, 36}, Keywords: []string{"thought-provoking", "philosophical"}},
	Gloomy:      {GenreIDs: []int{18, 9648}, Keywords: []string{"melancholy", "sad"}},
	Humorous:    {GenreIDs: []int{35}, Keywords: []string{"comedy", "funny"}},
	Adventurous: {GenreIDs: []int{12, 28}, Keywords: []string{"adventure", "action"}},
	Romantic:    {GenreIDs: []int{10749}, Keywords: []string{"romance", "love"}},
	Thrilling:   {GenreIDs: []int{53, 27}, Keywords: []string{"suspense", "thriller"}},
	Relaxed:     {GenreIDs: []int{36, 99}, Keywords: []string{"calm", "peaceful"}},
}

// scoringMap is the wider mapping used by the mood meter. It covers more
// genres and keyword substrings per mood than the discover map.
var scoringMap = map[Mood]Mapping{
	Cheerful:    {GenreIDs: []int{35, 10751, 16}, Keywords: []string{"funny", "happy", "comedy", "feel-good", "heartwarming"}},
	Reflective:  {GenreIDs: []int{18, 36}, Keywords: []string{"thought-provoking", "philosophical", "meaningful", "deep"}},
	Gloomy:      {GenreIDs: []int{18, 9648, 10752}, Keywords: []string{"sad", "melancholy", "depressing", "tragic", "dark"}},
	Humorous:    {GenreIDs: []int{35}, Keywords: []string{"comedy", "funny", "humor", "laugh", "parody"}},
	Adventurous: {GenreIDs: []int{12, 28, 878}, Keywords: []string{"adventure", "action", "journey", "quest", "exploration"}},
	Romantic:    {GenreIDs: []int{10749}, Keywords: []string{"romance", "love", "relationship", "romantic", "passion"}},
	Thrilling:   {GenreIDs: []int{53, 27, 80}, Keywords: []string{"suspense", "thriller", "tension", "mystery", "twist"}},
	Relaxed:     {GenreIDs: []int{36, 99, 10770}, Keywords: []string{"calm", "peaceful", "soothing", "gentle", "relaxing"}},
}

// defaultMapping is the action/adventure fallback for unknown moods.
var defaultMapping = Mapping{GenreIDs: []int{28, 12}, Keywords: []string{"action", "adventure"}}

const (
	genreWeight   = 20
	keywordWeight = 10
)

// Parse returns the mood for a label, or false when it is outside the
// enumeration.
func Parse(label string) (Mood, bool) {
	m := Mood(strings.ToLower(strings.TrimSpace(label)))
	if _, ok := discoverMap[m]; ok {
		return m, true
	}
	return "", false
}

// DiscoverMapping returns the genre/keyword pair used to discover movies for
// a mood label. Unknown labels fall back to action/adventure.
func DiscoverMapping(label string) Mapping {
	if m, ok := Parse(label); ok {
		return discoverMap[m]
	}
	return defaultMapping
}

// Random picks a mood uniformly at random.
func Random() Mood {
	return All[rand.Intn(len(All))]
}

// Score computes the top four mood-affinity percentages for a movie given
// its genres and keywords. Each matching genre contributes 20 points and
// each keyword containing one of the mood's substrings contributes 10; the
// raw scores are normalized by their sum (or 100 when the sum is zero).
func Score(genres []models.Genre, keywords []models.Keyword) []models.MoodScore {
	scores := make(map[Mood]int, len(All))

	for _, g := range genres {
		for m, mapping := range scoringMap {
			for _, id := range mapping.GenreIDs {
				if id == g.ID {
					scores[m] += genreWeight
					break
				}
			}
		}
	}

	for _, kw := range keywords {
		name := strings.ToLower(kw.Name)
		for m, mapping := range scoringMap {
			for _, sub := range mapping.Keywords {
				if strings.Contains(name, sub) {
					scores[m] += keywordWeight
					break
				}
			}
		}
	}

	total := 0
	for _, s := range scores {
		total += s
	}
	if total == 0 {
		total = 100
	}

	result := make([]models.MoodScore, 0, len(All))
	for _, m := range All {
		pct := int(float64(scores[m])/float64(total)*100 + 0.5)
		result = append(result, models.MoodScore{Mood: string(m), Percentage: pct})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Percentage > result[j].Percentage
	})

	if len(result) > 4 {
		result = result[:4]
	}
	return result
}
