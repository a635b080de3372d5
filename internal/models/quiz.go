package models

// QuestionType classifies how a quiz question is presented.
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionTrueFalse      QuestionType = "true-false"
	QuestionImageBased     QuestionType = "image-based"
)

// Difficulty labels a quiz question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// QuizQuestion is a single generated question.
type QuizQuestion struct {
	Question      string       `json:"question"`
	Options       []string     `json:"options"`
	CorrectAnswer string       `json:"correct_answer"`
	ImageURL      string       `json:"image_url,omitempty"`
	Type          QuestionType `json:"type"`
	Difficulty    Difficulty   `json:"difficulty"`
	Points        int          `json:"points"`
	Explanation   string       `json:"explanation,omitempty"`
}

// QuizMode selects how a quiz session is played.
type QuizMode string

const (
	QuizModeRegular   QuizMode = "regular"
	QuizModeTimed     QuizMode = "timed"
	QuizModeChallenge QuizMode = "challenge"
)

// QuizStats is the cumulative per-user quiz record.
type QuizStats struct {
	TotalQuizzes   int    `json:"total_quizzes"`
	CorrectAnswers int    `json:"correct_answers"`
	TotalQuestions int    `json:"total_questions"`
	BestScore      int    `json:"best_score"`
	Streaks        int    `json:"streaks"`
	LastQuizDate   string `json:"last_quiz_date,omitempty"`
}

// Accuracy returns the lifetime percentage of correct answers.
func (s *QuizStats) Accuracy() int {
	if s.TotalQuestions == 0 {
		return 0
	}
	return int(float64(s.CorrectAnswers)/float64(s.TotalQuestions)*100 + 0.5)
}

// StartQuizRequest is the request body for starting a quiz session.
type StartQuizRequest struct {
	Mood string   `json:"mood"`
	Mode QuizMode `json:"mode"`
}

// AnswerRequest is the request body for answering the current question.
type AnswerRequest struct {
	Answer string `json:"answer"`
}
