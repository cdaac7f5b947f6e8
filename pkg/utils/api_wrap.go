package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusCreated, data, message)
}

func RespondWithStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

type errorMapping struct {
	target  error
	code    int
	message string
}

// errorTable is checked in order; the first errors.Is match wins.
var errorTable = []errorMapping{
	{ErrInvalidPage, http.StatusBadRequest, "Page must be greater than 0"},
	{ErrInvalidPageSize, http.StatusBadRequest, "Page size must be between 1 and 100"},
	{ErrInvalidInput, http.StatusBadRequest, ""},
	{ErrAccountNotFound, http.StatusNotFound, "Account not found"},
	{ErrEmailAlreadyExists, http.StatusConflict, "Email already registered"},
	{ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{ErrInvalidRefreshToken, http.StatusUnauthorized, "Invalid or expired refresh token"},
	{ErrForbidden, http.StatusForbidden, "Forbidden"},
	{ErrIncompleteSurvey, http.StatusBadRequest, ""},
	{ErrInvalidSurvey, http.StatusBadRequest, ""},
	{ErrInvalidSkinType, http.StatusBadRequest, ""},
	{ErrCosmeticNotFound, http.StatusNotFound, "Cosmetic not found"},
	{ErrCosmeticAlreadyExists, http.StatusConflict, "Cosmetic with this barcode already exists"},
	{ErrInvalidBarcode, http.StatusBadRequest, "Barcode must be 8 to 13 digits"},
	{ErrIngredientNotFound, http.StatusNotFound, "Ingredient not found"},
	{ErrCompositionConflict, http.StatusConflict, "Ingredient already in composition"},
	{ErrInvalidRating, http.StatusBadRequest, "Rating must be between 1 and 5"},
	{ErrAlreadyFavorite, http.StatusConflict, "Cosmetic already in favorites"},
	{ErrFavoriteNotFound, http.StatusNotFound, "Favorite not found"},
	{ErrCarePlanNotFound, http.StatusNotFound, "Care plan not found"},
	{ErrInvalidImportFile, http.StatusBadRequest, ""},
	{ErrEmbeddingUnavailable, http.StatusServiceUnavailable, "Similarity search is not available"},
}

// HandleServiceError maps a service error to a response. An empty message in
// the table means the error text itself is safe to show.
func HandleServiceError(c *gin.Context, err error) {
	for _, m := range errorTable {
		if errors.Is(err, m.target) {
			msg := m.message
			if msg == "" {
				msg = err.Error()
			}
			RespondError(c, m.code, msg)
			return
		}
	}

	zap.L().Error("unhandled service error",
		zap.String("trace_id", traceID(c)),
		zap.String("path", c.FullPath()),
		zap.Error(err))
	RespondError(c, http.StatusInternalServerError, "Internal server error")
}
