package controllers_fx

import (
	"go.uber.org/fx"

	"clean/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewSurveyController),
	fx.Provide(controllers.NewCosmeticController),
	fx.Provide(controllers.NewIngredientController),
	fx.Provide(controllers.NewReviewController),
	fx.Provide(controllers.NewFavoriteController),
	fx.Provide(controllers.NewCarePlanController))
