// Package trivia generates movie facts from catalog records and from the
// curated per-mood pools.
package trivia

import (
	"fmt"
	"math/rand"
	"strings"

	"moodyflicks/internal/models"
)

var moodFacts = map[string][]string{
	"cheerful": {
		"Studies show that watching comedy movies can boost your immune system by increasing antibody production.",
		"The first feature-length comedy film was 'Tillie's Punctured Romance' (1914) starring Charlie Chaplin.",
		"Laughter during funny movies can burn up to 40 calories per 10 minutes!",
		"The longest running comedy film series is 'Carry On' with 31 films between 1958 and 1992.",
		"The term 'feel-good movie' originated in the 1980s to describe films that leave audiences feeling positive.",
	},
	"reflective": {
		"The term 'arthouse film' originated in the 1950s to describe movies with artistic or experimental styles.",
		"Philosophical films often use visual metaphors to represent complex ideas about existence.",
		"Many reflective films use the technique of 'slow cinema' with long takes and minimal dialogue.",
		"Studies show that watching thought-provoking films can increase empathy and emotional intelligence.",
		"The 'Golden Age of Philosophical Cinema' is often considered to be the 1960s European art films.",
	},
	"gloomy": {
		"The term 'film noir' (dark film) was coined by French critics to describe Hollywood crime dramas of the 1940s.",
		"Melancholic films often use desaturated colors and rain to enhance the somber mood.",
		"Studies show that sad movies can actually improve mood by triggering empathy hormones.",
		"The 'pathetic fallacy' is a literary device where weather reflects emotions, commonly used in gloomy films.",
		"Many directors use the 'blue filter' technique to create a cold, detached feeling in melancholic scenes.",
	},
	"humorous": {
		"The first comedy film was 'L'Arroseur Arrosé' (1895), showing a gardener being sprayed with his own hose.",
		"Comedies are one of the oldest film genres, dating back to the silent film era.",
		"The term 'slapstick' comes from a prop made of two wooden slats that made a 'slap' sound when hit together.",
		"Studies show that comedy films can reduce stress hormones and increase endorphins.",
		"The longest laugh recorded in a test screening was 3 minutes and 16 seconds during 'There's Something About Mary'.",
	},
	"adventurous": {
		"The adventure film genre dates back to the silent era with films like 'The Thief of Bagdad' (1924).",
		"Many adventure films are shot in IMAX to capture the grandeur of exotic locations.",
		"The Wilhelm Scream is a famous sound effect used in over 400 adventure and action films.",
		"Adventure films often follow the 'Hero's Journey' narrative structure identified by Joseph Campbell.",
		"The most expensive adventure film ever made was 'Pirates of the Caribbean: On Stranger Tides' at $379 million.",
	},
	"romantic": {
		"The term 'meet-cute' describes the scenario where future romantic partners meet for the first time.",
		"The first on-screen kiss was in the 1896 film 'The Kiss', which caused moral outrage at the time.",
		"Studies show that watching romantic movies can increase oxytocin, the 'love hormone'.",
		"The 'golden hour' (just after sunrise or before sunset) is often used to film romantic scenes for its warm glow.",
		"The longest on-screen kiss was 3 minutes and 24 seconds in the film 'You're Next' (2013).",
	},
	"thrilling": {
		"Alfred Hitchcock, the 'Master of Suspense', never won an Oscar for directing despite making over 50 films.",
		"The term 'MacGuffin' refers to a plot device that motivates characters but is ultimately unimportant.",
		"Suspenseful music often uses the 'Shepard tone' illusion to create a feeling of ever-increasing tension.",
		"Studies show that watching thrillers can burn calories due to increased heart rate and adrenaline.",
		"The shower scene in 'Psycho' contains 78 camera setups and 52 cuts, but the knife never actually touches the victim.",
	},
	"relaxed": {
		"The 'slow cinema' movement features long takes, minimal dialogue, and contemplative pacing.",
		"Nature documentaries are often filmed at higher frame rates and slowed down to create a calming effect.",
		"Studies show that watching peaceful scenes in films can lower blood pressure and heart rate.",
		"The 'golden ratio' (approximately 1.618:1) is often used in composing visually pleasing, calming shots.",
		"ASMR (Autonomous Sensory Meridian Response) videos became popular for their relaxing, tingling sensations.",
	},
}

var generalFacts = []string{
	"The first film ever made was 'Roundhay Garden Scene' (1888), which is only 2.11 seconds long.",
	"The Wilhelm Scream is a famous sound effect used in over 400 films since 1951.",
	"The longest film ever made is 'Logistics' (2012) with a runtime of 857 hours (35 days and 17 hours).",
	"The highest-grossing film of all time adjusted for inflation is 'Gone with the Wind' (1939).",
	"The first feature-length animated film was Disney's 'Snow White and the Seven Dwarfs' (1937).",
	"The shortest performance to win an Oscar was Beatrice Straight in 'Network' (1976) with 5 minutes 40 seconds of screen time.",
	"The most expensive film ever made was 'Pirates of the Caribbean: On Stranger Tides' (2011) with a budget of $379 million.",
	"The first film to use CGI was 'Westworld' (1973), which used it to show the robot's point of view.",
	"The highest-grossing R-rated film is 'Joker' (2019), which made over $1 billion worldwide.",
	"The first 3D film was 'The Power of Love' (1922), which used the anaglyph color system with red/green glasses.",
}

// ForMood returns a random fact for the mood. Unknown moods use the
// cheerful pool.
func ForMood(moodLabel string) string {
	facts, ok := moodFacts[moodLabel]
	if !ok {
		facts = moodFacts["cheerful"]
	}
	return facts[rand.Intn(len(facts))]
}

// General returns a random general-cinema fact.
func General() string {
	return generalFacts[rand.Intn(len(generalFacts))]
}

// FromMovie builds a random fact from a movie's catalog record.
func FromMovie(movie *models.MovieDetail) string {
	options := []string{
		fmt.Sprintf("%s was released in %d and has a rating of %.1f/10.", movie.Title, movie.ReleaseYear(), movie.VoteAverage),
		fmt.Sprintf("%s was directed by %s.", movie.Title, directorName(movie)),
		fmt.Sprintf("The budget for %s was %s.", movie.Title, budgetText(movie)),
		fmt.Sprintf("%s stars %s.", movie.Title, topCast(movie)),
		fmt.Sprintf("%s has a runtime of %dh %dm.", movie.Title, movie.Runtime/60, movie.Runtime%60),
		fmt.Sprintf("%s was filmed in %s.", movie.Title, countryNames(movie)),
		fmt.Sprintf("%s is categorized as %s.", movie.Title, genreNames(movie)),
	}
	return options[rand.Intn(len(options))]
}

func directorName(movie *models.MovieDetail) string {
	if movie.Credits != nil {
		for _, c := range movie.Credits.Crew {
			if c.Job == "Director" {
				return c.Name
			}
		}
	}
	return "an acclaimed director"
}

func budgetText(movie *models.MovieDetail) string {
	if movie.Budget > 0 {
		return fmt.Sprintf("$%.1f million", float64(movie.Budget)/1000000)
	}
	return "not publicly disclosed"
}

func topCast(movie *models.MovieDetail) string {
	if movie.Credits == nil || len(movie.Credits.Cast) == 0 {
		return "talented actors"
	}
	cast := movie.Credits.Cast
	if len(cast) > 3 {
		cast = cast[:3]
	}
	names := make([]string, len(cast))
	for i, c := range cast {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}

func countryNames(movie *models.MovieDetail) string {
	if len(movie.ProductionCountries) == 0 {
		return "various locations"
	}
	names := make([]string, len(movie.ProductionCountries))
	for i, c := range movie.ProductionCountries {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}

func genreNames(movie *models.MovieDetail) string {
	names := make([]string, len(movie.Genres))
	for i, g := range movie.Genres {
		names[i] = g.Name
	}
	return strings.Join(names, ", ")
}
