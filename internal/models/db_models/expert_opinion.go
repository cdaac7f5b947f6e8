package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ExpertOpinion struct {
	BaseModel
	CosmeticBarcode string         `gorm:"size:13;not null;index"`
	AccountID       uuid.UUID      `gorm:"type:uuid;not null"`
	ExpertTitle     string         `gorm:"size:200"`
	Rating          int            `gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`
	Content         string         `gorm:"type:text;not null"`
	Recommendation  string         `gorm:"type:text"`
	SkinTypes       pq.StringArray `gorm:"type:text[]"`

	Account Account
}
