package response_models

type SurveyQuestionResponse struct {
	Code      string   `json:"code"`
	Question  string   `json:"question"`
	SkinTypes []string `json:"skin_types"`
}

type ProblemQuestionResponse struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Question string `json:"question"`
}

type SurveyCatalogResponse struct {
	SkinTypeQuestions []SurveyQuestionResponse  `json:"skin_type_questions"`
	ProblemQuestions  []ProblemQuestionResponse `json:"problem_questions"`
	MinAnswer         int                       `json:"min_answer"`
	MaxAnswer         int                       `json:"max_answer"`
}

type SkinProfileResponse struct {
	SkinType     string   `json:"skin_type"`
	SkinProblems []string `json:"skin_problems"`
}
