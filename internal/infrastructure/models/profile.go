package models

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	UserID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email            string    `gorm:"type:varchar(255);not null"`
	Age              int       `gorm:"not null;default:0"`
	UserType         string    `gorm:"type:varchar(50)"`
	NetWorth         float64   `gorm:"type:decimal(18,2);default:0"`
	SavingsRate      float64   `gorm:"type:decimal(5,2);default:0"`
	TotalDebt        float64   `gorm:"type:decimal(18,2);default:0"`
	MonthlyNetSalary float64   `gorm:"type:decimal(18,2);default:0"`
	Currency         string    `gorm:"type:varchar(10);default:'USD'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Profile) TableName() string {
	return "profiles"
}
