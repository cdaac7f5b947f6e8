package db_models

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

type IngredientEmbedding struct {
	IngredientRefNo int             `gorm:"primaryKey;autoIncrement:false"`
	SourceText      string          `gorm:"type:text"`
	Model           string          `gorm:"size:100"`
	Embedding       pgvector.Vector `gorm:"type:vector"`
	CreatedAt       time.Time       `gorm:"autoCreateTime"`
}

// SimilarIngredient is the scan target for nearest-neighbour queries.
type SimilarIngredient struct {
	Ingredient
	Similarity float64
}
