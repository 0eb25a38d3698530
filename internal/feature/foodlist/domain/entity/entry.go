// Package entity defines the food-log entry entity.
package entity

import (
	"time"

	foodentity "cookcal_backend/internal/feature/food/domain/entity"
	userentity "cookcal_backend/internal/feature/users/domain/entity"
)

// Entry is one logged food consumption of a user. Entries are cascade-deleted
// when their owner or the referenced food is deleted.
type Entry struct {
	ID     uint      `gorm:"primaryKey"`
	UserID uint      `gorm:"column:id_user;not null;index"`
	FoodID uint      `gorm:"column:id_food;not null;index"`
	Amount float64   `gorm:"not null;check:positive_amount,amount > 0"`
	Time   time.Time `gorm:"not null"`

	User userentity.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Food foodentity.Food `gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName keeps the table name of the fixed schema contract.
func (Entry) TableName() string { return "foodlist" }
