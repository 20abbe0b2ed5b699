package models

import "gorm.io/gorm"

// Feedback stores a user's 1-5 rating of a meal within a plan, kept for
// later feedback-based models.
type Feedback struct {
	gorm.Model
	UserID uint  `gorm:"index;not null"`
	PlanID *uint `gorm:"index"`
	MealID uint  `gorm:"index;not null"`
	Rating int   `gorm:"not null"` // 1-5
}
