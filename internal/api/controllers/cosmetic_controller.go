package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"clean/internal/models/request_models"
	"clean/internal/services"
	"clean/pkg/middleware"
	"clean/pkg/utils"
)

const defaultCosmeticPageSize = 20

type CosmeticController struct {
	cosmeticService services.CosmeticServiceInterface
}

func NewCosmeticController(cosmeticService services.CosmeticServiceInterface) *CosmeticController {
	return &CosmeticController{cosmeticService: cosmeticService}
}

func barcodeParam(c *gin.Context) (string, bool) {
	barcode := strings.TrimSpace(c.Param("barcode"))
	if barcode == "" {
		utils.RespondError(c, http.StatusBadRequest, "Barcode is required")
		return "", false
	}
	return barcode, true
}

// Search godoc
// @Summary Search cosmetics by name, manufacturer or category
// @Tags Cosmetics
// @Produce json
// @Param query query string false "Free text"
// @Param barcode query string false "Exact barcode"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /api/cosmetics/ [get]
func (cc *CosmeticController) Search(c *gin.Context) {
	page, pageSize, err := utils.ParsePagination(c, defaultCosmeticPageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	cosmetics, err := cc.cosmeticService.Search(c.Request.Context(), request_models.SearchCosmeticsRequest{
		Query:    c.Query("query"),
		Barcode:  c.Query("barcode"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cosmetics, "Cosmetics fetched successfully")
}

func (cc *CosmeticController) Get(c *gin.Context) {
	barcode, ok := barcodeParam(c)
	if !ok {
		return
	}

	cosmetic, err := cc.cosmeticService.Get(c.Request.Context(), barcode)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cosmetic, "Cosmetic fetched successfully")
}

// Create godoc
// @Summary Add a cosmetic; entries from non-admins start unverified
// @Tags Cosmetics
// @Accept json
// @Produce json
// @Param request body request_models.CosmeticRequest true "Cosmetic"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/cosmetics/ [post]
func (cc *CosmeticController) Create(c *gin.Context) {
	var req request_models.CosmeticRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	cosmetic, err := cc.cosmeticService.Create(c.Request.Context(), req, c.GetString(middleware.ContextRole))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, cosmetic, "Cosmetic created successfully")
}

func (cc *CosmeticController) Update(c *gin.Context) {
	barcode, ok := barcodeParam(c)
	if !ok {
		return
	}
	var req request_models.UpdateCosmeticRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	cosmetic, err := cc.cosmeticService.Update(c.Request.Context(), barcode, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cosmetic, "Cosmetic updated successfully")
}

func (cc *CosmeticController) Delete(c *gin.Context) {
	barcode, ok := barcodeParam(c)
	if !ok {
		return
	}

	if err := cc.cosmeticService.Delete(c.Request.Context(), barcode); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Cosmetic deleted successfully")
}

func (cc *CosmeticController) Verify(c *gin.Context) {
	barcode, ok := barcodeParam(c)
	if !ok {
		return
	}
	var req request_models.VerifyCosmeticRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
			return
		}
	}
	verified := true
	if req.IsVerified != nil {
		verified = *req.IsVerified
	}

	if err := cc.cosmeticService.Verify(c.Request.Context(), barcode, verified); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"barcode": barcode, "is_verified": verified}, "Verification updated")
}

func (cc *CosmeticController) Composition(c *gin.Context) {
	barcode, ok := barcodeParam(c)
	if !ok {
		return
	}

	items, err := cc.cosmeticService.GetComposition(c.Request.Context(), barcode)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Composition fetched successfully")
}

func (cc *CosmeticController) ClearComposition(c *gin.Context) {
	barcode, ok := barcodeParam(c)
	if !ok {
		return
	}

	removed, err := cc.cosmeticService.ClearComposition(c.Request.Context(), barcode)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"removed": removed}, "Composition cleared")
}

// AddComposition godoc
// @Summary Add an ingredient to a cosmetic's composition
// @Tags Cosmetics
// @Accept json
// @Produce json
// @Param request body request_models.CompositionRequest true "Composition entry"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/cosmetic_compositions/ [post]
func (cc *CosmeticController) AddComposition(c *gin.Context) {
	var req request_models.CompositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	item, err := cc.cosmeticService.AddComposition(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, item, "Ingredient added to composition")
}

func (cc *CosmeticController) CleanScore(c *gin.Context) {
	barcode, ok := barcodeParam(c)
	if !ok {
		return
	}

	score, err := cc.cosmeticService.CleanScore(c.Request.Context(), barcode)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, score, "Clean score computed")
}

func (cc *CosmeticController) Summary(c *gin.Context) {
	barcode, ok := barcodeParam(c)
	if !ok {
		return
	}

	summary, err := cc.cosmeticService.Summary(c.Request.Context(), barcode)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Cosmetic summary fetched successfully")
}
