package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User holds the profile plus the nutrition targets computed at creation.
// Targets are never mutated in place; a profile change recomputes them.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex"`
	Password string // bcrypt hash; empty for users created via the plan API
	Name     string `gorm:"not null"`

	Age               int            `gorm:"not null"`
	Gender            string         `gorm:"size:10;not null"` // "male" | "female"
	HeightCm          float64        `gorm:"not null"`
	WeightKg          float64        `gorm:"not null"`
	ActivityLevel     string         `gorm:"size:30;not null"`
	HealthGoal        string         `gorm:"size:20;not null"` // weight_loss | muscle_gain | maintain
	DietaryPreference string         `gorm:"size:30;not null"`
	Allergies         datatypes.JSON // JSON array of lowercase ingredient tokens

	TargetCalories int
	TargetProtein  int
	TargetCarbs    int
	TargetFat      int
}
