package db_models

// Cosmetic rows are hard-deleted; every table keyed by barcode cascades with them.
type Cosmetic struct {
	Barcode      string `gorm:"primaryKey;size:13"`
	ProductName  string `gorm:"size:100;not null;index"`
	Manufacturer string `gorm:"size:50;not null;index;index:idx_cosmetic_manufacturer_category"`
	Description  string `gorm:"type:text"`
	Category     string `gorm:"size:50;index;index:idx_cosmetic_manufacturer_category"`
	PurchaseLink string `gorm:"size:200"`
	IsVerified   bool   `gorm:"not null;default:false;index"`
	CreatedAt    int64  `gorm:"autoCreateTime"`
	UpdatedAt    int64  `gorm:"autoUpdateTime"`

	Compositions   []CosmeticComposition `gorm:"foreignKey:CosmeticBarcode;references:Barcode;constraint:OnDelete:CASCADE"`
	Reviews        []Review              `gorm:"foreignKey:CosmeticBarcode;references:Barcode;constraint:OnDelete:CASCADE"`
	ExpertOpinions []ExpertOpinion       `gorm:"foreignKey:CosmeticBarcode;references:Barcode;constraint:OnDelete:CASCADE"`
}
