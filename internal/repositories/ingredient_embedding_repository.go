package repositories

import (
	"context"
	"errors"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clean/internal/models/db_models"
)

type IngredientEmbeddingRepository interface {
	FindByRefNo(ctx context.Context, refNo int) (*db_models.IngredientEmbedding, error)
	Upsert(ctx context.Context, embedding *db_models.IngredientEmbedding) error
	// Nearest returns ingredients embedded by model, ordered by cosine
	// distance to vector, excluding excludeRefNo and anything below
	// minSimilarity.
	Nearest(ctx context.Context, vector pgvector.Vector, model string, excludeRefNo int, minSimilarity float64, limit int) ([]db_models.SimilarIngredient, error)
}

type ingredientEmbeddingRepository struct {
	db *gorm.DB
}

func NewIngredientEmbeddingRepository(db *gorm.DB) IngredientEmbeddingRepository {
	return &ingredientEmbeddingRepository{db: db}
}

func (r *ingredientEmbeddingRepository) FindByRefNo(ctx context.Context, refNo int) (*db_models.IngredientEmbedding, error) {
	var e db_models.IngredientEmbedding
	err := r.db.WithContext(ctx).First(&e, "ingredient_ref_no = ?", refNo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *ingredientEmbeddingRepository) Upsert(ctx context.Context, embedding *db_models.IngredientEmbedding) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ingredient_ref_no"}},
		DoUpdates: clause.AssignmentColumns([]string{"source_text", "model", "embedding"}),
	}).Create(embedding).Error
}

func (r *ingredientEmbeddingRepository) Nearest(ctx context.Context, vector pgvector.Vector, model string, excludeRefNo int, minSimilarity float64, limit int) ([]db_models.SimilarIngredient, error) {
	var results []db_models.SimilarIngredient

	query := `
        SELECT i.*, (1 - (e.embedding <=> ?)) AS similarity
        FROM ingredient_embeddings e
        JOIN ingredients i ON i.cosing_ref_no = e.ingredient_ref_no
        WHERE e.model = ?
          AND e.ingredient_ref_no <> ?
          AND (1 - (e.embedding <=> ?)) >= ?
        ORDER BY e.embedding <=> ?
        LIMIT ?
    `

	err := r.db.WithContext(ctx).
		Raw(query, vector, model, excludeRefNo, vector, minSimilarity, vector, limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
