package db_models

type CosmeticComposition struct {
	ID                 uint   `gorm:"primaryKey"`
	CosmeticBarcode    string `gorm:"size:13;not null;uniqueIndex:idx_composition_pair;index:idx_composition_order"`
	IngredientRefNo    int    `gorm:"not null;uniqueIndex:idx_composition_pair;index"`
	OrderInComposition int    `gorm:"index:idx_composition_order"`

	Ingredient Ingredient `gorm:"foreignKey:IngredientRefNo;references:CosingRefNo;constraint:OnDelete:CASCADE"`
}
