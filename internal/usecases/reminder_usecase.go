package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"finroute.backend/internal/domain/entities"
	domainerrors "finroute.backend/internal/domain/errors"
	"finroute.backend/internal/domain/repositories"
	"finroute.backend/pkg/utils"
)

// ReminderUsecase handles reminder business logic
type ReminderUsecase struct {
	reminderRepo repositories.ReminderRepository
}

// NewReminderUsecase creates a new reminder usecase
func NewReminderUsecase(reminderRepo repositories.ReminderRepository) *ReminderUsecase {
	return &ReminderUsecase{reminderRepo: reminderRepo}
}

// Create validates and persists a new reminder for the user.
func (u *ReminderUsecase) Create(ctx context.Context, userID uuid.UUID, input *entities.CreateReminderInput) (*entities.Reminder, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.BadRequest("title is required")
	}

	cadence := entities.ReminderCadence(input.Cadence)
	if !cadence.Valid() {
		return nil, domainerrors.BadRequest("cadence must be monthly or once")
	}

	nextRunAt, err := time.Parse(time.RFC3339, input.NextRunAt)
	if err != nil {
		return nil, domainerrors.BadRequest("nextRunAt must be an RFC 3339 timestamp")
	}

	reminder := &entities.Reminder{
		ID:        utils.GenerateUUIDv7(),
		UserID:    userID,
		Title:     title,
		Cadence:   cadence,
		NextRunAt: nextRunAt,
		CreatedAt: time.Now(),
	}
	if goalName := strings.TrimSpace(input.GoalName); goalName != "" {
		reminder.GoalName = null.StringFrom(goalName)
	}

	if err := u.reminderRepo.Create(ctx, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

// List returns the user's non-deleted reminders ordered by next run time.
func (u *ReminderUsecase) List(ctx context.Context, userID uuid.UUID) ([]*entities.Reminder, error) {
	reminders, err := u.reminderRepo.ListActive(ctx, userID)
	if err != nil {
		return nil, err
	}
	if reminders == nil {
		reminders = []*entities.Reminder{}
	}
	return reminders, nil
}

// Delete tombstones a reminder. Deleting an unknown or already-deleted
// reminder reports not found.
func (u *ReminderUsecase) Delete(ctx context.Context, userID, reminderID uuid.UUID) error {
	return u.reminderRepo.SoftDelete(ctx, userID, reminderID)
}
