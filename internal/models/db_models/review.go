package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	BaseModel
	CosmeticBarcode string    `gorm:"size:13;not null;index"`
	AccountID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Title           string    `gorm:"size:100;not null"`
	Content         string    `gorm:"type:text;not null"`
	Rating          int       `gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`
	ReviewDate      time.Time `gorm:"type:date;not null"`

	Account Account
}
