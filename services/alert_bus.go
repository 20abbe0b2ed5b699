package services

import (
	"time"

	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/models"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
}

var _alert alertDeps

// InitAlertDeps wires the alert bus. Safe to leave uninitialized in tests;
// EmitAlert is then a no-op.
func InitAlertDeps(db *gorm.DB, rt *RealtimeHub) {
	_alert = alertDeps{db: db, rt: rt}
}

// EmitAlert persists an event and pushes it to subscribers. userID 0 is a
// broadcast (e.g. training lifecycle events).
func EmitAlert(userID uint, typ, message string) {
	if _alert.db == nil {
		return
	}
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.Send(userID, map[string]any{
			"kind":  typ,
			"alert": a,
		})
	}
}
