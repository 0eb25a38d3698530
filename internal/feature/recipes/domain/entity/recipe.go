// Package entity defines the recipe entity.
package entity

import (
	"time"

	userentity "cookcal_backend/internal/feature/users/domain/entity"
)

// Recipe is a user-authored recipe with an optional picture. When the owning
// user is deleted the recipe survives and is re-owned to the sentinel id 0.
type Recipe struct {
	ID            uint `gorm:"primaryKey"`
	UserID        uint `gorm:"column:id_user;not null;default:0"`
	RecipePicture []byte
	Title         string    `gorm:"size:80;not null;check:recipe_title_minimum_characters,LENGTH(title) >= 2"`
	Ingredients   string    `gorm:"type:text;not null"`
	Instructions  string    `gorm:"type:text;not null"`
	Kcal100g      float64   `gorm:"column:kcal_100g;check:zero_or_positive_kcal_100g,kcal_100g >= 0"`
	CreatedAt     time.Time `gorm:"not null"`

	Owner userentity.User `gorm:"foreignKey:UserID;constraint:OnDelete:SET DEFAULT" json:"-"`
}

// TableName keeps the table name of the fixed schema contract.
func (Recipe) TableName() string { return "recipes" }
