package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clean/internal/models/db_models"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *db_models.Review) error
	ListByCosmetic(ctx context.Context, barcode string, page, pageSize int) ([]db_models.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(review).Error
}

func (r *reviewRepository) ListByCosmetic(ctx context.Context, barcode string, page, pageSize int) ([]db_models.Review, error) {
	var reviews []db_models.Review
	err := r.db.WithContext(ctx).
		Preload("Account").
		Where("cosmetic_barcode = ?", barcode).
		Scopes(paginate(page, pageSize)).
		Order("review_date DESC").
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}
