package cosmetic_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"clean/internal/repositories"
	"clean/internal/services"
)

var Module = fx.Provide(
	provideCosmeticRepo,
	provideCompositionRepo,
	services.NewCosmeticService)

func provideCosmeticRepo(db *gorm.DB) repositories.CosmeticRepository {
	return repositories.NewCosmeticRepository(db)
}

func provideCompositionRepo(db *gorm.DB) repositories.CompositionRepository {
	return repositories.NewCompositionRepository(db)
}
