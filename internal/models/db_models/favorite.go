package db_models

import "github.com/google/uuid"

type FavoriteProduct struct {
	BaseModel
	AccountID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorite_pair"`
	CosmeticBarcode string    `gorm:"size:13;not null;uniqueIndex:idx_favorite_pair"`

	Cosmetic Cosmetic `gorm:"foreignKey:CosmeticBarcode;references:Barcode;constraint:OnDelete:CASCADE"`
}
