package request_models

type CreateCarePlanRequest struct {
	PlanName    string `json:"plan_name" binding:"required,max=50"`
	Description string `json:"description"`
	// YYYY-MM-DD
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date"`
}

type CarePlanContentRequest struct {
	Cosmetic  string `json:"cosmetic" binding:"required"`
	Frequency string `json:"frequency" binding:"required,max=50"`
	TimeOfDay string `json:"time_of_day" binding:"required,max=50"`
	Notes     string `json:"notes"`
}

type CarePlanRatingRequest struct {
	Rating *bool `json:"rating" binding:"required"`
}

type FavoriteRequest struct {
	Cosmetic string `json:"cosmetic" binding:"required"`
}
