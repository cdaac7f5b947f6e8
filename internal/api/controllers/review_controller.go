package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clean/internal/models/request_models"
	"clean/internal/services"
	"clean/pkg/utils"
)

const defaultReviewPageSize = 10

type ReviewController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewController(reviewService services.ReviewServiceInterface) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

func (r *ReviewController) ListReviews(c *gin.Context) {
	barcode, ok := barcodeParam(c)
	if !ok {
		return
	}
	page, pageSize, err := utils.ParsePagination(c, defaultReviewPageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	reviews, err := r.reviewService.ListReviews(c.Request.Context(), barcode, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "Reviews fetched successfully")
}

func (r *ReviewController) AddReview(c *gin.Context) {
	barcode, ok := barcodeParam(c)
	if !ok {
		return
	}
	var req request_models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	review, err := r.reviewService.AddReview(c.Request.Context(), currentAccountID(c), barcode, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, review, "Review added")
}

func (r *ReviewController) ListExpertOpinions(c *gin.Context) {
	barcode, ok := barcodeParam(c)
	if !ok {
		return
	}

	opinions, err := r.reviewService.ListExpertOpinions(c.Request.Context(), barcode)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, opinions, "Expert opinions fetched successfully")
}

func (r *ReviewController) AddExpertOpinion(c *gin.Context) {
	barcode, ok := barcodeParam(c)
	if !ok {
		return
	}
	var req request_models.ExpertOpinionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	opinion, err := r.reviewService.AddExpertOpinion(c.Request.Context(), currentAccountID(c), barcode, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, opinion, "Expert opinion added")
}
