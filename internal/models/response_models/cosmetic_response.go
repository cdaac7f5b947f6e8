package response_models

import "clean/internal/cleanscore"

type CosmeticResponse struct {
	Barcode      string `json:"barcode"`
	ProductName  string `json:"product_name"`
	Manufacturer string `json:"manufacturer"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	PurchaseLink string `json:"purchase_link"`
	IsVerified   bool   `json:"is_verified"`
}

type IngredientResponse struct {
	CosingRefNo            int    `json:"cosing_ref_no"`
	INCIName               string `json:"inci_name"`
	CommonName             string `json:"common_name"`
	ActionDescription      string `json:"action_description"`
	Function               string `json:"function"`
	Restrictions           string `json:"restrictions"`
	UpdateDate             string `json:"update_date"`
	SafetyRating           string `json:"safety_rating"`
	RestrictionDescription string `json:"restriction_description"`
}

type SimilarIngredientResponse struct {
	IngredientResponse
	Similarity float64 `json:"similarity"`
}

type CompositionItemResponse struct {
	ID                 uint               `json:"id"`
	Cosmetic           string             `json:"cosmetic"`
	Ingredient         IngredientResponse `json:"ingredient"`
	OrderInComposition int                `json:"order_in_composition"`
}

type CosmeticSummaryResponse struct {
	Cosmetic    CosmeticResponse          `json:"cosmetic"`
	Composition []CompositionItemResponse `json:"composition"`
	CleanScore  cleanscore.Breakdown      `json:"clean_score"`
}

type ImportResultResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
