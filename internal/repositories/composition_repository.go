package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clean/internal/models/db_models"
)

type CompositionRepository interface {
	ListByCosmetic(ctx context.Context, barcode string) ([]db_models.CosmeticComposition, error)
	// Add appends the ingredient; a zero OrderInComposition is assigned the
	// next free position.
	Add(ctx context.Context, composition *db_models.CosmeticComposition) error
	DeleteByCosmetic(ctx context.Context, barcode string) (int64, error)
}

type compositionRepository struct {
	db *gorm.DB
}

func NewCompositionRepository(db *gorm.DB) CompositionRepository {
	return &compositionRepository{db: db}
}

func (r *compositionRepository) ListByCosmetic(ctx context.Context, barcode string) ([]db_models.CosmeticComposition, error) {
	var items []db_models.CosmeticComposition
	err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Where("cosmetic_barcode = ?", barcode).
		Order("order_in_composition ASC").
		Find(&items).Error
	return items, err
}

func (r *compositionRepository) Add(ctx context.Context, composition *db_models.CosmeticComposition) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if composition.OrderInComposition == 0 {
			// Lock the parent row so concurrent appends serialize.
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Select("barcode").
				Where("barcode = ?", composition.CosmeticBarcode).
				Take(&db_models.Cosmetic{}).Error; err != nil {
				return err
			}

			var last int
			if err := tx.Model(&db_models.CosmeticComposition{}).
				Where("cosmetic_barcode = ?", composition.CosmeticBarcode).
				Select("COALESCE(MAX(order_in_composition), 0)").
				Scan(&last).Error; err != nil {
				return err
			}
			composition.OrderInComposition = last + 1
		}
		return tx.Create(composition).Error
	})
}

func (r *compositionRepository) DeleteByCosmetic(ctx context.Context, barcode string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("cosmetic_barcode = ?", barcode).
		Delete(&db_models.CosmeticComposition{})
	return res.RowsAffected, res.Error
}
