package models

import "time"

// Alert is a persisted event also fanned out over the realtime hub,
// e.g. "training.completed" or "plan.created".
type Alert struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index"` // 0 for broadcast events
	Type      string `gorm:"size:30"`
	Message   string `gorm:"type:text"`
	CreatedAt time.Time
}
