package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clean/internal/models/request_models"
	"clean/internal/services"
	"clean/pkg/utils"
)

type CarePlanController struct {
	carePlanService services.CarePlanServiceInterface
}

func NewCarePlanController(carePlanService services.CarePlanServiceInterface) *CarePlanController {
	return &CarePlanController{carePlanService: carePlanService}
}

func (p *CarePlanController) List(c *gin.Context) {
	plans, err := p.carePlanService.List(c.Request.Context(), currentAccountID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Care plans fetched successfully")
}

func (p *CarePlanController) Create(c *gin.Context) {
	var req request_models.CreateCarePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := p.carePlanService.Create(c.Request.Context(), currentAccountID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, plan, "Care plan created")
}

func (p *CarePlanController) AddContent(c *gin.Context) {
	var req request_models.CarePlanContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := p.carePlanService.AddContent(c.Request.Context(), currentAccountID(c), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, plan, "Product added to care plan")
}

func (p *CarePlanController) Rate(c *gin.Context) {
	var req request_models.CarePlanRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := p.carePlanService.Rate(c.Request.Context(), currentAccountID(c), c.Param("id"), *req.Rating)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Rating saved")
}
