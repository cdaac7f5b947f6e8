package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"clean/internal/models/db_models"
)

type CosmeticRepository interface {
	Create(ctx context.Context, cosmetic *db_models.Cosmetic) error
	FindByBarcode(ctx context.Context, barcode string) (*db_models.Cosmetic, error)
	Search(ctx context.Context, query string, page, pageSize int) ([]db_models.Cosmetic, error)
	Update(ctx context.Context, cosmetic *db_models.Cosmetic) error
	Delete(ctx context.Context, barcode string) (int64, error)
	SetVerified(ctx context.Context, barcode string, verified bool) (int64, error)
}

type cosmeticRepository struct {
	db *gorm.DB
}

func NewCosmeticRepository(db *gorm.DB) CosmeticRepository {
	return &cosmeticRepository{db: db}
}

func (r *cosmeticRepository) Create(ctx context.Context, cosmetic *db_models.Cosmetic) error {
	return r.db.WithContext(ctx).Create(cosmetic).Error
}

func (r *cosmeticRepository) FindByBarcode(ctx context.Context, barcode string) (*db_models.Cosmetic, error) {
	var cosmetic db_models.Cosmetic
	err := r.db.WithContext(ctx).Where("barcode = ?", barcode).First(&cosmetic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cosmetic, nil
}

// Search matches query against name, manufacturer and category. An empty
// query lists everything.
func (r *cosmeticRepository) Search(ctx context.Context, query string, page, pageSize int) ([]db_models.Cosmetic, error) {
	var cosmetics []db_models.Cosmetic

	q := r.db.WithContext(ctx).Scopes(paginate(page, pageSize))
	if query = strings.TrimSpace(query); query != "" {
		like := "%" + escapeLike(query) + "%"
		q = q.Where("product_name ILIKE ? OR manufacturer ILIKE ? OR category ILIKE ?", like, like, like)
	}

	err := q.Order("is_verified DESC").Order("product_name").Find(&cosmetics).Error
	return cosmetics, err
}

func (r *cosmeticRepository) Update(ctx context.Context, cosmetic *db_models.Cosmetic) error {
	return r.db.WithContext(ctx).Save(cosmetic).Error
}

// cosmeticDependents hold a cosmetic_barcode column. They are removed with
// the cosmetic so a re-registered barcode starts clean.
var cosmeticDependents = []any{
	&db_models.CosmeticComposition{},
	&db_models.Review{},
	&db_models.ExpertOpinion{},
	&db_models.FavoriteProduct{},
	&db_models.CarePlanContent{},
}

func (r *cosmeticRepository) Delete(ctx context.Context, barcode string) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range cosmeticDependents {
			if err := tx.Unscoped().Where("cosmetic_barcode = ?", barcode).Delete(model).Error; err != nil {
				return err
			}
		}
		res := tx.Where("barcode = ?", barcode).Delete(&db_models.Cosmetic{})
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}

func (r *cosmeticRepository) SetVerified(ctx context.Context, barcode string, verified bool) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Cosmetic{}).
		Where("barcode = ?", barcode).
		Update("is_verified", verified)
	return res.RowsAffected, res.Error
}
