package utils

import "errors"

var (
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
	ErrInvalidInput    = errors.New("invalid input")

	ErrAccountNotFound     = errors.New("account not found")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrForbidden           = errors.New("forbidden")

	ErrIncompleteSurvey = errors.New("skin survey is incomplete")
	ErrInvalidSurvey    = errors.New("invalid skin survey answers")
	ErrInvalidSkinType  = errors.New("invalid skin type")

	ErrCosmeticNotFound      = errors.New("cosmetic not found")
	ErrCosmeticAlreadyExists = errors.New("cosmetic already exists")
	ErrInvalidBarcode        = errors.New("invalid barcode")
	ErrIngredientNotFound    = errors.New("ingredient not found")
	ErrCompositionConflict   = errors.New("ingredient already in composition")
	ErrInvalidRating         = errors.New("rating must be between 1 and 5")
	ErrAlreadyFavorite       = errors.New("cosmetic already in favorites")
	ErrFavoriteNotFound      = errors.New("favorite not found")
	ErrCarePlanNotFound      = errors.New("care plan not found")
	ErrInvalidImportFile     = errors.New("invalid import file")
	ErrEmbeddingUnavailable  = errors.New("embedding provider unavailable")
)
