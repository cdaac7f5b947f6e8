package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clean/internal/cosing"
	"clean/internal/models/request_models"
	"clean/internal/services"
	"clean/pkg/utils"
)

const maxImportFileSize = 64 << 20

type IngredientController struct {
	ingredientService services.IngredientServiceInterface
	importService     services.ImportServiceInterface
}

func NewIngredientController(ingredientService services.IngredientServiceInterface, importService services.ImportServiceInterface) *IngredientController {
	return &IngredientController{
		ingredientService: ingredientService,
		importService:     importService,
	}
}

func refNoParam(c *gin.Context) (int, bool) {
	refNo, err := strconv.Atoi(c.Param("id"))
	if err != nil || refNo < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid ingredient id")
		return 0, false
	}
	return refNo, true
}

func limitQuery(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Limit must be a positive integer")
		return 0, false
	}
	return limit, true
}

// Search godoc
// @Summary Search ingredients by INCI name, common name or function
// @Tags Ingredients
// @Produce json
// @Param search query string false "Search text"
// @Param limit query int false "Max results (default 10, max 100)"
// @Success 200 {object} utils.APIResponse
// @Router /api/ingredients/ [get]
func (i *IngredientController) Search(c *gin.Context) {
	limit, ok := limitQuery(c)
	if !ok {
		return
	}

	ingredients, err := i.ingredientService.Search(c.Request.Context(), c.Query("search"), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ingredients, "Ingredients fetched successfully")
}

func (i *IngredientController) Get(c *gin.Context) {
	refNo, ok := refNoParam(c)
	if !ok {
		return
	}

	ingredient, err := i.ingredientService.Get(c.Request.Context(), refNo)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ingredient, "Ingredient fetched successfully")
}

func (i *IngredientController) Similar(c *gin.Context) {
	refNo, ok := refNoParam(c)
	if !ok {
		return
	}
	limit, ok := limitQuery(c)
	if !ok {
		return
	}

	similar, err := i.ingredientService.Similar(c.Request.Context(), refNo, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, similar, "Similar ingredients fetched successfully")
}

// Curate godoc
// @Summary Set an ingredient's safety rating
// @Tags Ingredients
// @Accept json
// @Produce json
// @Param id path int true "COSING reference number"
// @Param request body request_models.CurateIngredientRequest true "harmful, neutral or beneficial"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/ingredients/{id}/ [patch]
func (i *IngredientController) Curate(c *gin.Context) {
	refNo, ok := refNoParam(c)
	if !ok {
		return
	}

	var req request_models.CurateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	ingredient, err := i.ingredientService.Curate(c.Request.Context(), refNo, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ingredient, "Ingredient updated successfully")
}

// ImportCosing godoc
// @Summary Import the COSING ingredient inventory
// @Tags Ingredients
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "COSING CSV export"
// @Param encoding formData string false "latin1 (default) or utf-8"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/import_cosing/ [post]
func (i *IngredientController) ImportCosing(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportFileSize)

	header, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "No file provided")
		return
	}
	if !strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		utils.RespondError(c, http.StatusBadRequest, "File must be a CSV export")
		return
	}

	file, err := header.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}
	defer file.Close()

	opts := cosing.Options{Latin1: !strings.EqualFold(c.PostForm("encoding"), "utf-8")}
	zap.L().Info("cosing import requested", zap.String("file", header.Filename), zap.Int64("size", header.Size))

	result, err := i.importService.ImportCosing(c.Request.Context(), file, opts)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Import finished")
}
