package models

import (
	"time"

	"github.com/google/uuid"
)

// Plan stores the goal array as a JSON document column; the goal list
// is always read and rewritten as a whole.
type Plan struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Title            string    `gorm:"type:varchar(255);not null"`
	PlanText         string    `gorm:"type:text;not null"`
	Goals            string    `gorm:"type:jsonb;default:'[]'"`
	NetWorth         float64   `gorm:"type:decimal(18,2);default:0"`
	SavingsRate      float64   `gorm:"type:decimal(5,2);default:0"`
	DebtToIncome     float64   `gorm:"type:decimal(8,2);default:0"`
	TotalDebt        float64   `gorm:"type:decimal(18,2);default:0"`
	MonthlyNetSalary float64   `gorm:"type:decimal(18,2);default:0"`
	Currency         string    `gorm:"type:varchar(10);default:'USD'"`
	Saved            bool      `gorm:"default:false"`
	CreatedAt        time.Time `gorm:"index"`
}

func (Plan) TableName() string {
	return "plans"
}
