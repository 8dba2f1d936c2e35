package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"finroute.backend/internal/domain/entities"
	domainerrors "finroute.backend/internal/domain/errors"
	"finroute.backend/internal/infrastructure/models"
	"finroute.backend/pkg/utils"
)

// ReminderRepository implements reminder operations with tombstone
// deletes; rows survive deletion.
type ReminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates a new reminder repository
func NewReminderRepository(db *gorm.DB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

// Create persists a new reminder
func (r *ReminderRepository) Create(ctx context.Context, reminder *entities.Reminder) error {
	if reminder.ID == uuid.Nil {
		reminder.ID = utils.GenerateUUIDv7()
	}
	reminder.CreatedAt = time.Now()

	m := &models.Reminder{
		ID:        reminder.ID,
		UserID:    reminder.UserID,
		Title:     reminder.Title,
		GoalName:  reminder.GoalName.String,
		Cadence:   string(reminder.Cadence),
		NextRunAt: reminder.NextRunAt,
		CreatedAt: reminder.CreatedAt,
		Deleted:   false,
	}

	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// ListActive returns non-deleted reminders ordered by next run time
func (r *ReminderRepository) ListActive(ctx context.Context, userID uuid.UUID) ([]*entities.Reminder, error) {
	var rows []models.Reminder
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ? AND deleted = ?", userID, false).
		Order("next_run_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	reminders := make([]*entities.Reminder, 0, len(rows))
	for i := range rows {
		reminders = append(reminders, r.toEntity(&rows[i]))
	}
	return reminders, nil
}

// SoftDelete marks a reminder tombstoned; the row remains
func (r *ReminderRepository) SoftDelete(ctx context.Context, userID, id uuid.UUID) error {
	res := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Reminder{}).
		Where("id = ? AND user_id = ? AND deleted = ?", id, userID, false).
		Update("deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ReminderRepository) toEntity(m *models.Reminder) *entities.Reminder {
	reminder := &entities.Reminder{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Cadence:   entities.ReminderCadence(m.Cadence),
		NextRunAt: m.NextRunAt,
		CreatedAt: m.CreatedAt,
		Deleted:   m.Deleted,
	}
	if m.GoalName != "" {
		reminder.GoalName = null.StringFrom(m.GoalName)
	}
	return reminder
}
