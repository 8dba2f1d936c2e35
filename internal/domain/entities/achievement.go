package entities

import (
	"time"

	"github.com/google/uuid"
)

// Achievement codes awarded on plan generation
const (
	AchievementCodeFirstPlanner = "first_planner"
	AchievementCodePlanner      = "planner"
)

// Achievement is an append-only milestone record. One is created on
// every successful plan generation; the tier depends on whether any
// prior plan existed for the user.
type Achievement struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Title     string    `json:"title"`
	Icon      string    `json:"icon"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`
}

// FirstPlannerAchievement builds the first-plan tier
func FirstPlannerAchievement(userID uuid.UUID) *Achievement {
	return &Achievement{
		UserID: userID,
		Title:  "First Planner",
		Icon:   "Award",
		Code:   AchievementCodeFirstPlanner,
	}
}

// PlannerAchievement builds the repeat-plan tier
func PlannerAchievement(userID uuid.UUID) *Achievement {
	return &Achievement{
		UserID: userID,
		Title:  "Planner",
		Icon:   "CalendarCheck",
		Code:   AchievementCodePlanner,
	}
}
