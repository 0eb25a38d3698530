// Package entity defines the weight-measurement entity.
package entity

import (
	"time"

	userentity "cookcal_backend/internal/feature/users/domain/entity"
)

// Measurement is one recorded body weight of a user, cascade-deleted with its
// owner.
type Measurement struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"column:id_user;not null;index"`
	Weight      float64   `gorm:"not null;check:positive_weight,weight > 0"`
	MeasureTime time.Time `gorm:"not null"`

	User userentity.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName keeps the table name of the fixed schema contract.
func (Measurement) TableName() string { return "weightmeasurements" }
