// Package entity defines the user domain entity.
package entity

import "time"

// SentinelID is the reserved user id representing "no owner". The row exists
// only as a foreign-key default target; it is never a valid authorization
// subject and must never be returned by lookups or lists.
const SentinelID uint = 0

// User represents a registered account. Check constraint names are part of
// the persistence contract and are reused for user-facing conflict messages.
type User struct {
	ID             uint   `gorm:"primaryKey"`
	Email          string `gorm:"size:255;not null;uniqueIndex:uni_users_email"`
	Password       string `gorm:"size:255;not null"`
	ProfilePicture []byte
	FirstName      string  `gorm:"size:50;not null;check:first_name_minimum_characters,LENGTH(first_name) >= 2"`
	LastName       string  `gorm:"size:50;not null;check:last_name_minimum_characters,LENGTH(last_name) >= 2"`
	Gender         int16   `gorm:"not null;check:gender_between_0_and_2,gender BETWEEN 0 AND 2"`
	Age            int16   `gorm:"not null;check:age_between_1_and_120,age > 0 AND age < 120"`
	GoalWeight     float64 `gorm:"default:null;check:positive_goal_weight,goal_weight > 0"`
	Height         float64 `gorm:"default:null;check:positive_height,height > 0"`
	State          int16   `gorm:"check:state_between_0_and_2,state BETWEEN 0 AND 2"`
	IsNutrAdviser  bool
	CreatedAt      time.Time `gorm:"not null"`
}

// TableName keeps the table name of the fixed schema contract.
func (User) TableName() string { return "users" }
