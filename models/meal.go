package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Meal is one catalog entry. Ingredients and dietary tags are JSON arrays
// of lowercase strings.
type Meal struct {
	gorm.Model
	Name        string  `gorm:"not null"`
	MealType    string  `gorm:"size:20;index;not null"` // breakfast | lunch | dinner | snack
	Calories    float64 `gorm:"not null"`
	Protein     float64 `gorm:"not null"`
	Carbs       float64 `gorm:"not null"`
	Fat         float64 `gorm:"not null"`
	Ingredients datatypes.JSON
	DietaryTags datatypes.JSON
}
