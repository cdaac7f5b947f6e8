package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clean/internal/models/request_models"
	"clean/internal/services"
	"clean/pkg/utils"
)

type SurveyController struct {
	surveyService services.SurveyServiceInterface
}

func NewSurveyController(surveyService services.SurveyServiceInterface) *SurveyController {
	return &SurveyController{surveyService: surveyService}
}

func (s *SurveyController) Questions(c *gin.Context) {
	utils.RespondSuccess(c, s.surveyService.Catalog(), "Survey fetched successfully")
}

// Classify godoc
// @Summary Classify survey answers without storing them
// @Tags Survey
// @Accept json
// @Produce json
// @Param request body request_models.SkinSurveyRequest true "Survey answers"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/survey/classify/ [post]
func (s *SurveyController) Classify(c *gin.Context) {
	var req request_models.SkinSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := s.surveyService.Classify(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Survey classified")
}

// Submit godoc
// @Summary Classify survey answers and store the result on the account
// @Tags Survey
// @Accept json
// @Produce json
// @Param request body request_models.SkinSurveyRequest true "Survey answers"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/survey/submit/ [post]
func (s *SurveyController) Submit(c *gin.Context) {
	var req request_models.SkinSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := s.surveyService.Submit(c.Request.Context(), currentAccountID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Skin profile saved")
}
