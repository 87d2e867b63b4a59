package interview

type CreateInterviewRequest struct {
	Category string `json:"category"`
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer"`
}

type ChangeCategoryRequest struct {
	Category string `json:"category"`
}

type InterviewResponse struct {
	ID string `json:"id"`
	SessionView
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
