package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clean/internal/models/db_models"
)

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *db_models.FavoriteProduct) error
	Delete(ctx context.Context, accountID uuid.UUID, barcode string) (int64, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.FavoriteProduct, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *db_models.FavoriteProduct) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(favorite).Error
}

// Delete removes the row permanently so the pair can be favorited again.
func (r *favoriteRepository) Delete(ctx context.Context, accountID uuid.UUID, barcode string) (int64, error) {
	res := r.db.WithContext(ctx).
		Unscoped().
		Where("account_id = ? AND cosmetic_barcode = ?", accountID, barcode).
		Delete(&db_models.FavoriteProduct{})
	return res.RowsAffected, res.Error
}

func (r *favoriteRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.FavoriteProduct, error) {
	var favorites []db_models.FavoriteProduct
	err := r.db.WithContext(ctx).
		Preload("Cosmetic").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}
