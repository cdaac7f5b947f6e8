package db_models

import (
	"time"

	"github.com/google/uuid"
)

type CarePlan struct {
	BaseModel
	AccountID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	PlanName    string     `gorm:"size:50;not null"`
	Description string     `gorm:"type:text"`
	StartDate   time.Time  `gorm:"type:date;not null"`
	EndDate     *time.Time `gorm:"type:date"`

	Contents []CarePlanContent `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
	Ratings  []CarePlanRating  `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
}

type CarePlanContent struct {
	BaseModel
	PlanID          uuid.UUID `gorm:"type:uuid;not null;index"`
	CosmeticBarcode string    `gorm:"size:13;not null"`
	Frequency       string    `gorm:"size:50;not null"`
	TimeOfDay       string    `gorm:"size:50;not null"`
	Notes           string    `gorm:"type:text"`

	Cosmetic Cosmetic `gorm:"foreignKey:CosmeticBarcode;references:Barcode;constraint:OnDelete:CASCADE"`
}

type CarePlanRating struct {
	BaseModel
	PlanID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_plan_rating_pair"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_plan_rating_pair"`
	Rating    bool      `gorm:"not null"`
}
