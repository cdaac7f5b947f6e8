package care_plan_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"clean/internal/repositories"
	"clean/internal/services"
)

// Module provides favorites and care plans, the two per-account collections.
var Module = fx.Provide(
	provideFavoriteRepo,
	provideCarePlanRepo,
	services.NewFavoriteService,
	services.NewCarePlanService)

func provideFavoriteRepo(db *gorm.DB) repositories.FavoriteRepository {
	return repositories.NewFavoriteRepository(db)
}

func provideCarePlanRepo(db *gorm.DB) repositories.CarePlanRepository {
	return repositories.NewCarePlanRepository(db)
}
