package models

import (
	"time"

	"github.com/google/uuid"
)

type Achievement struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Icon      string    `gorm:"type:varchar(50);not null"`
	Code      string    `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time `gorm:"index"`
}

func (Achievement) TableName() string {
	return "achievements"
}
