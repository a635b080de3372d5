// Package quiz turns a batch of catalog movies into quiz questions and runs
// quiz sessions as an explicit state machine.
package quiz

import (
	"fmt"
	"math/rand"
	"sort"

	"moodyflicks/internal/models"
)

// MinMovies is the smallest movie batch the generator can work with; the
// plot question reads titles up to the eleventh movie.
const MinMovies = 11

// oddOneOut is the planted wrong-mood answer for the category question.
const oddOneOut = "The Shawshank Redemption"

// Generate derives the fixed eight-question set from an ordered batch of
// movies for a mood, then shuffles the question order for presentation.
func Generate(moodLabel string, movies []models.Movie) ([]models.QuizQuestion, error) {
	if len(movies) < MinMovies {
		return nil, fmt.Errorf("need at least %d movies to build a quiz, got %d", MinMovies, len(movies))
	}

	questions := buildQuestions(moodLabel, movies)

	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	return questions, nil
}

func buildQuestions(moodLabel string, movies []models.Movie) []models.QuizQuestion {
	topFour := make([]models.Movie, 4)
	copy(topFour, movies[:4])
	sort.SliceStable(topFour, func(i, j int) bool {
		return topFour[i].VoteAverage > topFour[j].VoteAverage
	})
	highest := topFour[0]

	year0 := movies[0].ReleaseYear()
	year2 := movies[2].ReleaseYear()

	after2015 := "False"
	afterWord := "before or during"
	if year2 > 2015 {
		after2015 = "True"
		afterWord = "after"
	}

	above7 := "False"
	aboveWord := "not higher than"
	if movies[6].VoteAverage > 7.0 {
		above7 = "True"
		aboveWord = "higher than"
	}

	return []models.QuizQuestion{
		{
			Question:      "Which movie has the highest rating?",
			Options:       titles(movies[:4]),
			CorrectAnswer: highest.Title,
			Type:          models.QuestionMultipleChoice,
			Difficulty:    models.DifficultyEasy,
			Points:        10,
			Explanation:   fmt.Sprintf("%s has the highest rating of %.1f/10.", highest.Title, highest.VoteAverage),
		},
		{
			Question: "What year was this movie released?",
			Options: []string{
				fmt.Sprintf("%d", year0),
				fmt.Sprintf("%d", year0-1),
				fmt.Sprintf("%d", year0+1),
				fmt.Sprintf("%d", year0-2),
			},
			CorrectAnswer: fmt.Sprintf("%d", year0),
			ImageURL:      posterURL(movies[0]),
			Type:          models.QuestionImageBased,
			Difficulty:    models.DifficultyMedium,
			Points:        15,
			Explanation:   fmt.Sprintf("%s was released in %d.", movies[0].Title, year0),
		},
		{
			Question:      "Which movie does this image belong to?",
			Options:       titles(movies[1:5]),
			CorrectAnswer: movies[1].Title,
			ImageURL:      posterURL(movies[1]),
			Type:          models.QuestionImageBased,
			Difficulty:    models.DifficultyMedium,
			Points:        15,
			Explanation:   fmt.Sprintf("This is the poster for %s, released in %d.", movies[1].Title, movies[1].ReleaseYear()),
		},
		{
			Question:      fmt.Sprintf("True or False: %q was released after 2015.", movies[2].Title),
			Options:       []string{"True", "False"},
			CorrectAnswer: after2015,
			Type:          models.QuestionTrueFalse,
			Difficulty:    models.DifficultyEasy,
			Points:        10,
			Explanation:   fmt.Sprintf("%s was released in %d, which is %s 2015.", movies[2].Title, year2, afterWord),
		},
		{
			Question:      fmt.Sprintf("Which of these movies is NOT in the %s category?", moodLabel),
			Options:       []string{movies[2].Title, movies[3].Title, oddOneOut, movies[4].Title},
			CorrectAnswer: oddOneOut,
			Type:          models.QuestionMultipleChoice,
			Difficulty:    models.DifficultyMedium,
			Points:        15,
			Explanation:   fmt.Sprintf("%s is a drama film and doesn't fit the %s category.", oddOneOut, moodLabel),
		},
		{
			Question:      fmt.Sprintf("Based on the poster, which movie would you most likely watch when feeling %s?", moodLabel),
			Options:       titles(movies[5:9]),
			CorrectAnswer: movies[5].Title,
			ImageURL:      posterURL(movies[5]),
			Type:          models.QuestionImageBased,
			Difficulty:    models.DifficultyHard,
			Points:        20,
			Explanation:   fmt.Sprintf("%s is a great choice for a %s mood with its %s.", movies[5].Title, moodLabel, moodTone(moodLabel)),
		},
		{
			Question:      fmt.Sprintf("True or False: The movie %q has a rating higher than 7.0.", movies[6].Title),
			Options:       []string{"True", "False"},
			CorrectAnswer: above7,
			Type:          models.QuestionTrueFalse,
			Difficulty:    models.DifficultyMedium,
			Points:        15,
			Explanation:   fmt.Sprintf("%s has a rating of %.1f, which is %s 7.0.", movies[6].Title, movies[6].VoteAverage, aboveWord),
		},
		{
			Question:      "Which movie has the most intriguing plot based on this overview?",
			Options:       titles(movies[7:11]),
			CorrectAnswer: movies[7].Title,
			Type:          models.QuestionMultipleChoice,
			Difficulty:    models.DifficultyHard,
			Points:        20,
			Explanation:   fmt.Sprintf("While subjective, %s is known for its compelling storyline: %q", movies[7].Title, truncate(movies[7].Overview, 100)),
		},
	}
}

func titles(movies []models.Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.Title
	}
	return out
}

func posterURL(m models.Movie) string {
	if m.PosterPath == "" {
		return ""
	}
	return models.TMDBImageBaseW300 + m.PosterPath
}

func moodTone(moodLabel string) string {
	switch moodLabel {
	case "cheerful":
		return "uplifting tone"
	case "thrilling":
		return "suspenseful elements"
	case "romantic":
		return "love story"
	default:
		return "engaging storyline"
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
