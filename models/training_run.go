package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TrainingRun records one classifier training: the artifact version it
// produced, the held-out accuracy and the class labels seen.
type TrainingRun struct {
	gorm.Model
	ModelVersion string         `gorm:"size:36;index;not null"`
	DatasetPath  string         `gorm:"type:text"`
	Accuracy     float64        `gorm:"not null"`
	Classes      datatypes.JSON // sorted JSON array of labels
	RowCount     int
}
