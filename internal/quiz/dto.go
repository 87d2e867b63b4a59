package quiz

import "time"

type SubmitQuizRequest struct {
	Category string   `json:"category"`
	Answers  []string `json:"answers"`
}

type QuestionResult struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Feedback      string `json:"feedback"`
}

type SubmitQuizResponse struct {
	ID        string           `json:"id"`
	Category  string           `json:"category"`
	Score     int              `json:"score"`
	Total     int              `json:"total"`
	Results   []QuestionResult `json:"results"`
	CreatedAt time.Time        `json:"created_at"`
}

type QuestionsResponse struct {
	Category  string     `json:"category"`
	Questions []Question `json:"questions"`
}
