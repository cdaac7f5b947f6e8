package db_models

type Ingredient struct {
	CosingRefNo            int    `gorm:"primaryKey;autoIncrement:false"`
	INCIName               string `gorm:"column:inci_name;size:200;not null;index"`
	CommonName             string `gorm:"size:200;index"`
	ActionDescription      string `gorm:"type:text"`
	Function               string `gorm:"size:200;index"`
	Restrictions           string `gorm:"type:text"`
	UpdateDate             string `gorm:"size:20"`
	SafetyRating           string `gorm:"size:20;not null;default:neutral;index"`
	RestrictionDescription string `gorm:"type:text"`
}
