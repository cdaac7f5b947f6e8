package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clean/internal/models/request_models"
	"clean/internal/services"
	"clean/pkg/utils"
)

type FavoriteController struct {
	favoriteService services.FavoriteServiceInterface
}

func NewFavoriteController(favoriteService services.FavoriteServiceInterface) *FavoriteController {
	return &FavoriteController{favoriteService: favoriteService}
}

func (f *FavoriteController) List(c *gin.Context) {
	favorites, err := f.favoriteService.List(c.Request.Context(), currentAccountID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, favorites, "Favorites fetched successfully")
}

func (f *FavoriteController) Add(c *gin.Context) {
	var req request_models.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	favorite, err := f.favoriteService.Add(c.Request.Context(), currentAccountID(c), req.Cosmetic)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, favorite, "Added to favorites")
}

func (f *FavoriteController) Remove(c *gin.Context) {
	barcode, ok := barcodeParam(c)
	if !ok {
		return
	}

	if err := f.favoriteService.Remove(c.Request.Context(), currentAccountID(c), barcode); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Removed from favorites")
}
