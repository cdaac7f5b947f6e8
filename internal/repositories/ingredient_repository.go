package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clean/internal/models/db_models"
)

type IngredientRepository interface {
	FindByRefNo(ctx context.Context, refNo int) (*db_models.Ingredient, error)
	Search(ctx context.Context, query string, limit int) ([]db_models.Ingredient, error)
	// UpsertBatch inserts or refreshes COSING fields. Curated fields
	// (safety rating, restriction description) are left untouched.
	UpsertBatch(ctx context.Context, ingredients []db_models.Ingredient) error
	// UpdateCuration sets the safety rating and, when non-nil, the
	// restriction description.
	UpdateCuration(ctx context.Context, refNo int, safetyRating string, restrictionDescription *string) (int64, error)
}

type ingredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) FindByRefNo(ctx context.Context, refNo int) (*db_models.Ingredient, error) {
	var ingredient db_models.Ingredient
	err := r.db.WithContext(ctx).First(&ingredient, "cosing_ref_no = ?", refNo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) Search(ctx context.Context, query string, limit int) ([]db_models.Ingredient, error) {
	var ingredients []db_models.Ingredient

	q := r.db.WithContext(ctx).Limit(limit)
	if query = strings.TrimSpace(query); query != "" {
		like := "%" + escapeLike(query) + "%"
		prefix := escapeLike(query) + "%"
		q = q.Where("inci_name ILIKE ? OR common_name ILIKE ? OR function ILIKE ?", like, like, like).
			Order(clause.OrderBy{Expression: clause.Expr{
				SQL:                "CASE WHEN inci_name ILIKE ? THEN 0 ELSE 1 END, inci_name",
				Vars:               []interface{}{prefix},
				WithoutParentheses: true,
			}})
	} else {
		q = q.Order("inci_name")
	}

	err := q.Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepository) UpsertBatch(ctx context.Context, ingredients []db_models.Ingredient) error {
	if len(ingredients) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cosing_ref_no"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"inci_name", "common_name", "action_description", "function", "restrictions", "update_date",
			}),
		}).Create(&ingredients).Error
	})
}

func (r *ingredientRepository) UpdateCuration(ctx context.Context, refNo int, safetyRating string, restrictionDescription *string) (int64, error) {
	updates := map[string]interface{}{"safety_rating": safetyRating}
	if restrictionDescription != nil {
		updates["restriction_description"] = *restrictionDescription
	}

	res := r.db.WithContext(ctx).
		Model(&db_models.Ingredient{}).
		Where("cosing_ref_no = ?", refNo).
		Updates(updates)
	return res.RowsAffected, res.Error
}
