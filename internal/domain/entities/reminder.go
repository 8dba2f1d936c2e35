package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ReminderCadence represents how often a reminder is meant to recur
type ReminderCadence string

const (
	CadenceMonthly ReminderCadence = "monthly"
	CadenceOnce    ReminderCadence = "once"
)

// Valid reports whether the cadence is one of the supported values
func (c ReminderCadence) Valid() bool {
	return c == CadenceMonthly || c == CadenceOnce
}

// Reminder is a scheduled-intent record. Nothing in this service fires
// reminders; nextRunAt is persisted for the client to render. Deletion
// is a tombstone flag, the row survives.
type Reminder struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"userId"`
	Title     string          `json:"title"`
	GoalName  null.String     `json:"goalName,omitempty"`
	Cadence   ReminderCadence `json:"cadence"`
	NextRunAt time.Time       `json:"nextRunAt"`
	CreatedAt time.Time       `json:"createdAt"`
	Deleted   bool            `json:"-"`
}

// CreateReminderInput represents input for creating a reminder
type CreateReminderInput struct {
	Title     string `json:"title" binding:"required,min=1,max=255"`
	GoalName  string `json:"goalName"`
	Cadence   string `json:"cadence" binding:"required"`
	NextRunAt string `json:"nextRunAt" binding:"required"`
}
