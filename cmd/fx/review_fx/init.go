package review_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"clean/internal/repositories"
	"clean/internal/services"
)

var Module = fx.Provide(
	provideReviewRepo,
	provideExpertOpinionRepo,
	services.NewReviewService)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepository {
	return repositories.NewReviewRepository(db)
}

func provideExpertOpinionRepo(db *gorm.DB) repositories.ExpertOpinionRepository {
	return repositories.NewExpertOpinionRepository(db)
}
