package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clean/internal/models/db_models"
)

type ExpertOpinionRepository interface {
	Create(ctx context.Context, opinion *db_models.ExpertOpinion) error
	ListByCosmetic(ctx context.Context, barcode string) ([]db_models.ExpertOpinion, error)
}

type expertOpinionRepository struct {
	db *gorm.DB
}

func NewExpertOpinionRepository(db *gorm.DB) ExpertOpinionRepository {
	return &expertOpinionRepository{db: db}
}

func (r *expertOpinionRepository) Create(ctx context.Context, opinion *db_models.ExpertOpinion) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(opinion).Error
}

func (r *expertOpinionRepository) ListByCosmetic(ctx context.Context, barcode string) ([]db_models.ExpertOpinion, error) {
	var opinions []db_models.ExpertOpinion
	err := r.db.WithContext(ctx).
		Preload("Account").
		Where("cosmetic_barcode = ?", barcode).
		Order("created_at DESC").
		Find(&opinions).Error
	return opinions, err
}
