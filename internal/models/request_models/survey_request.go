package request_models

type SkinSurveyRequest struct {
	SkinTypeAnswers map[string]int  `json:"skin_type_answers" binding:"required"`
	ProblemAnswers  map[string]bool `json:"problem_answers"`
}
