package models

import (
	"time"

	"github.com/google/uuid"
)

// Reminder rows are tombstoned via Deleted rather than removed
type Reminder struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	GoalName  string    `gorm:"type:varchar(255)"`
	Cadence   string    `gorm:"type:varchar(20);not null"`
	NextRunAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
	Deleted   bool `gorm:"default:false"`
}

func (Reminder) TableName() string {
	return "reminders"
}
