package domain

type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "EASY"
	DifficultyMedium DifficultyLevel = "MEDIUM"
	DifficultyHard   DifficultyLevel = "HARD"
)

type Lesson struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	DifficultyLevel DifficultyLevel `json:"difficultyLevel"`
}

type Question struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type QuestionSummary struct {
	Question            Question `json:"question"`
	Correct             bool     `json:"correct"`
	SelectedOptionIndex *int     `json:"selectedOptionIndex,omitempty"`
}

type QuizSummary struct {
	ID                int64             `json:"id"`
	Score             int               `json:"score"`
	QuestionSummaries []QuestionSummary `json:"questionSummaries"`
}

// CorrectCount returns how many questions were answered correctly.
func (q *QuizSummary) CorrectCount() int {
	n := 0
	for _, qs := range q.QuestionSummaries {
		if qs.Correct {
			n++
		}
	}
	return n
}
