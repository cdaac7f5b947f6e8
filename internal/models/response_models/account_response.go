package response_models

type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type AccountResponse struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	IsStaff      bool     `json:"is_staff"`
	SkinType     string   `json:"skin_type"`
	SkinProblems []string `json:"skin_problems"`
	DateJoined   string   `json:"date_joined"`
}
