package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel carries a uuid key and unix-second timestamps.
type BaseModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CreatedAt int64          `gorm:"autoCreateTime"`
	UpdatedAt int64          `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.CreatedAt = time.Now().Unix()
	b.UpdatedAt = b.CreatedAt
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now().Unix()
	return nil
}

// AllModels lists every table managed by AutoMigrate, parents first.
func AllModels() []any {
	return []any{
		&Account{},
		&Cosmetic{},
		&Ingredient{},
		&CosmeticComposition{},
		&Review{},
		&ExpertOpinion{},
		&FavoriteProduct{},
		&CarePlan{},
		&CarePlanContent{},
		&CarePlanRating{},
		&IngredientEmbedding{},
	}
}
