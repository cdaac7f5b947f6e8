package request_models

type CosmeticRequest struct {
	Barcode      string `json:"barcode" binding:"required"`
	ProductName  string `json:"product_name" binding:"required,max=100"`
	Manufacturer string `json:"manufacturer" binding:"required,max=50"`
	Description  string `json:"description"`
	Category     string `json:"category" binding:"required,max=50"`
	PurchaseLink string `json:"purchase_link" binding:"omitempty,url,max=200"`
}

type UpdateCosmeticRequest struct {
	ProductName  string `json:"product_name" binding:"required,max=100"`
	Manufacturer string `json:"manufacturer" binding:"required,max=50"`
	Description  string `json:"description"`
	Category     string `json:"category" binding:"required,max=50"`
	PurchaseLink string `json:"purchase_link" binding:"omitempty,url,max=200"`
}

type VerifyCosmeticRequest struct {
	IsVerified *bool `json:"is_verified"`
}

type CompositionRequest struct {
	Cosmetic           string `json:"cosmetic" binding:"required"`
	Ingredient         int    `json:"ingredient" binding:"required,min=1"`
	OrderInComposition *int   `json:"order_in_composition" binding:"omitempty,min=1"`
}

type SearchCosmeticsRequest struct {
	Query    string
	Barcode  string
	Page     int
	PageSize int
}

type CurateIngredientRequest struct {
	SafetyRating           string  `json:"safety_rating" binding:"required"`
	RestrictionDescription *string `json:"restriction_description"`
}
