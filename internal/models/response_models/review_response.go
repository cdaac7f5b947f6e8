package response_models

type ReviewResponse struct {
	ID         string `json:"id"`
	Cosmetic   string `json:"product_id"`
	UserID     string `json:"user_id"`
	Username   string `json:"username"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Rating     int    `json:"rating"`
	ReviewDate string `json:"review_date"`
}

type ExpertOpinionResponse struct {
	ID             string   `json:"id"`
	Cosmetic       string   `json:"product_id"`
	ExpertName     string   `json:"expert_name"`
	ExpertTitle    string   `json:"expert_title"`
	Rating         int      `json:"rating"`
	Content        string   `json:"content"`
	Recommendation string   `json:"recommendation"`
	SkinTypes      []string `json:"skin_types"`
	CreatedAt      string   `json:"created_at"`
}

type FavoriteResponse struct {
	ID       string           `json:"id"`
	Cosmetic CosmeticResponse `json:"cosmetic"`
}

type CarePlanContentResponse struct {
	ID        string           `json:"id"`
	Cosmetic  CosmeticResponse `json:"cosmetic"`
	Frequency string           `json:"frequency"`
	TimeOfDay string           `json:"time_of_day"`
	Notes     string           `json:"notes"`
}

type CarePlanResponse struct {
	ID          string                    `json:"id"`
	PlanName    string                    `json:"plan_name"`
	Description string                    `json:"description"`
	StartDate   string                    `json:"start_date"`
	EndDate     *string                   `json:"end_date"`
	Contents    []CarePlanContentResponse `json:"contents"`
	Likes       int                       `json:"likes"`
	Dislikes    int                       `json:"dislikes"`
}
