package db_models

import "github.com/lib/pq"

const (
	RoleUser   = "user"
	RoleExpert = "expert"
	RoleAdmin  = "admin"
)

type Account struct {
	BaseModel
	Username     string `gorm:"not null"`
	Email        string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null;default:user"`

	SkinType     string         `gorm:"not null;default:Normal"`
	SkinProblems pq.StringArray `gorm:"type:text[]"`

	Reviews   []Review
	Favorites []FavoriteProduct
	CarePlans []CarePlan
}

func (a *Account) IsStaff() bool {
	return a.Role == RoleAdmin
}
