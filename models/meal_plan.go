package models

import (
	"time"

	"gorm.io/gorm"
)

// MealPlan pins one catalog meal per slot for a user on a date, together
// with the summed nutrient totals of the selected meals.
type MealPlan struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	PlanDate time.Time `gorm:"index;not null"`

	BreakfastID uint `gorm:"not null"`
	LunchID     uint `gorm:"not null"`
	DinnerID    uint `gorm:"not null"`
	SnackID     *uint

	TotalCalories float64
	TotalProtein  float64
	TotalCarbs    float64
	TotalFat      float64
}
