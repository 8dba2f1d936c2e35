package repositories

import (
	"context"

	"github.com/google/uuid"
	"finroute.backend/internal/domain/entities"
)

// PlanRepository defines plan document operations. Plans are append-only
// apart from goal-array rewrites and the saved flag; there is no delete.
type PlanRepository interface {
	Create(ctx context.Context, plan *entities.Plan) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*entities.Plan, error)
	// GetLatest returns the most recently created plan for the user,
	// or ErrNotFound when none exists.
	GetLatest(ctx context.Context, userID uuid.UUID) (*entities.Plan, error)
	// List returns all plans for the user, newest first. A zero limit
	// means no limit.
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Plan, int64, error)
	// HasAny reports whether the user has at least one plan
	HasAny(ctx context.Context, userID uuid.UUID) (bool, error)
	// ReplaceGoals rewrites the whole goal array of a plan
	ReplaceGoals(ctx context.Context, userID, planID uuid.UUID, goals []entities.Goal) error
	SetSaved(ctx context.Context, userID, planID uuid.UUID, saved bool) error
}

// ReminderRepository defines reminder operations. Deletes are
// tombstones; rows are never physically removed.
type ReminderRepository interface {
	Create(ctx context.Context, reminder *entities.Reminder) error
	// ListActive returns non-deleted reminders ordered by next run time
	ListActive(ctx context.Context, userID uuid.UUID) ([]*entities.Reminder, error)
	SoftDelete(ctx context.Context, userID, id uuid.UUID) error
}

// AchievementRepository defines achievement operations (append-only)
type AchievementRepository interface {
	Create(ctx context.Context, achievement *entities.Achievement) error
	// List returns achievements ordered by creation time descending
	List(ctx context.Context, userID uuid.UUID) ([]*entities.Achievement, error)
}
