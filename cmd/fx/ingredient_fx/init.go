package ingredient_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"clean/internal/config"
	"clean/internal/repositories"
	"clean/internal/services"
)

var Module = fx.Provide(
	provideIngredientRepo,
	provideIngredientEmbeddingRepo,
	provideImportService,
	services.NewIngredientService)

func provideIngredientRepo(db *gorm.DB) repositories.IngredientRepository {
	return repositories.NewIngredientRepository(db)
}

func provideIngredientEmbeddingRepo(db *gorm.DB) repositories.IngredientEmbeddingRepository {
	return repositories.NewIngredientEmbeddingRepository(db)
}

func provideImportService(ingredientRepo repositories.IngredientRepository, cfg config.Config) services.ImportServiceInterface {
	return services.NewImportService(ingredientRepo, cfg.ImportBatchSize)
}
