package request_models

type ReviewRequest struct {
	Title   string `json:"title" binding:"required,max=100"`
	Content string `json:"content" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
}

type ExpertOpinionRequest struct {
	ExpertTitle    string   `json:"expert_title" binding:"max=200"`
	Rating         int      `json:"rating" binding:"required"`
	Content        string   `json:"content" binding:"required"`
	Recommendation string   `json:"recommendation"`
	SkinTypes      []string `json:"skin_types"`
}
