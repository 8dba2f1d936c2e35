package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Goal is a named savings target embedded in a plan's goal array. Each
// goal gets a server-assigned ID at creation; name-based addressing is
// kept only as a compatibility shim for older clients.
type Goal struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	Description   null.String `json:"description,omitempty"`
	TargetAmount  float64     `json:"targetAmount"`
	CurrentAmount float64     `json:"currentAmount"`
	TargetDate    string      `json:"targetDate"`
}

// KeyMetrics is the derived financial summary attached to each plan
type KeyMetrics struct {
	NetWorth         float64 `json:"netWorth"`
	SavingsRate      float64 `json:"savingsRate"`
	DebtToIncome     float64 `json:"debtToIncome"`
	TotalDebt        float64 `json:"totalDebt"`
	MonthlyNetSalary float64 `json:"monthlyNetSalary"`
}

// Plan is a persisted AI-generated financial narrative tied to a
// snapshot of goals and metrics at generation time. Immutable except
// for goal-array rewrites and the saved flag; never physically deleted.
type Plan struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"userId"`
	Title      string     `json:"title"`
	PlanText   string     `json:"plan"`
	Goals      []Goal     `json:"goals"`
	KeyMetrics KeyMetrics `json:"keyMetrics"`
	Currency   string     `json:"currency"`
	Saved      bool       `json:"saved"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// GoalInput is a single goal as submitted by the client. Amounts arrive
// as strings (the form surface submits everything flattened) and are
// coerced during validation.
type GoalInput struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	TargetAmount  string `json:"targetAmount"`
	CurrentAmount string `json:"currentAmount"`
	TargetDate    string `json:"targetDate"`
}

// GeneratePlanInput is the structured plan-generation request. The
// flattened goal-<id>-<field> wire format is parsed into this type at
// the HTTP boundary before validation.
type GeneratePlanInput struct {
	Goals            []GoalInput `json:"goals"`
	NetWorth         float64     `json:"netWorth"`
	SavingsRate      float64     `json:"savingsRate"`
	TotalDebt        float64     `json:"totalDebt"`
	MonthlyNetSalary float64     `json:"monthlyNetSalary"`
	Currency         string      `json:"currency"`
	IsFirstPlan      bool        `json:"isFirstPlan"`
}

// PlanResult is the synchronous response of a successful generation.
// Achievement is the one picked for the caller, which follows the
// client-supplied isFirstPlan flag rather than the persisted tier.
type PlanResult struct {
	Plan        *Plan        `json:"plan"`
	Achievement *Achievement `json:"achievement"`
}

// UpdateGoalAmountInput addresses a goal inside a plan. PlanID empty
// means the most recent plan. GoalID takes precedence over GoalName.
type UpdateGoalAmountInput struct {
	PlanID        string  `json:"planId"`
	GoalID        string  `json:"goalId"`
	GoalName      string  `json:"goalName"`
	CurrentAmount float64 `json:"currentAmount" binding:"min=0"`
}

// DeleteGoalInput addresses a goal for deletion
type DeleteGoalInput struct {
	PlanID   string `json:"planId"`
	GoalID   string `json:"goalId"`
	GoalName string `json:"goalName"`
}
