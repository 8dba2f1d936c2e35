package entities

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents a user's financial profile. One per user; created
// at signup, mutated by profile saves, never deleted.
type Profile struct {
	UserID           uuid.UUID `json:"userId"`
	Email            string    `json:"email"`
	Age              int       `json:"age"`
	UserType         string    `json:"userType"`
	NetWorth         float64   `json:"netWorth"`
	SavingsRate      float64   `json:"savingsRate"`
	TotalDebt        float64   `json:"totalDebt"`
	MonthlyNetSalary float64   `json:"monthlyNetSalary"`
	Currency         string    `json:"currency"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// SaveProfileInput represents input for a profile save
type SaveProfileInput struct {
	Age              int     `json:"age" binding:"omitempty,min=0,max=150"`
	UserType         string  `json:"userType"`
	NetWorth         float64 `json:"netWorth" binding:"omitempty,min=0"`
	SavingsRate      float64 `json:"savingsRate" binding:"omitempty,min=0,max=100"`
	TotalDebt        float64 `json:"totalDebt" binding:"omitempty,min=0"`
	MonthlyNetSalary float64 `json:"monthlyNetSalary" binding:"omitempty,min=0"`
	Currency         string  `json:"currency"`
}
