// Package entity defines the food reference-data entity.
package entity

// Food is immutable reference data: rows are created and deleted, never
// updated.
type Food struct {
	ID       uint    `gorm:"primaryKey"`
	Title    string  `gorm:"size:80;not null;check:food_title_minimum_characters,LENGTH(title) >= 2"`
	Kcal100g float64 `gorm:"column:kcal_100g;not null;check:positive_kcal_100g_in_food,kcal_100g > 0"`
}

// TableName keeps the table name of the fixed schema contract.
func (Food) TableName() string { return "food" }
