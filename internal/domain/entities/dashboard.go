package entities

import (
	"time"

	"github.com/google/uuid"
)

// DashboardGoal is a goal tagged with the plan it came from
type DashboardGoal struct {
	Goal
	PlanID        uuid.UUID `json:"planId"`
	PlanCreatedAt time.Time `json:"planCreatedAt"`
}

// DashboardState is the read-model snapshot served to the dashboard.
// Plan is the most recent plan, or nil when the user has none.
type DashboardState struct {
	Plan         *Plan           `json:"plan"`
	PlansCount   int             `json:"plansCount"`
	TotalGoals   int             `json:"totalGoals"`
	AllGoals     []DashboardGoal `json:"allGoals"`
	Reminders    []*Reminder     `json:"reminders"`
	Achievements []*Achievement  `json:"achievements"`
	Currency     string          `json:"currency"`
}
