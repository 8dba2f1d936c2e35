package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"finroute.backend/internal/domain/entities"
	domainerrors "finroute.backend/internal/domain/errors"
	"finroute.backend/internal/infrastructure/models"
	"finroute.backend/pkg/utils"
)

// PlanRepository implements plan document operations. The goal array
// lives in a JSON column and is always read and rewritten whole.
type PlanRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// Create persists a new plan with a server-assigned creation timestamp
func (r *PlanRepository) Create(ctx context.Context, plan *entities.Plan) error {
	if plan.ID == uuid.Nil {
		plan.ID = utils.GenerateUUIDv7()
	}
	plan.CreatedAt = time.Now()

	m, err := r.toModel(plan)
	if err != nil {
		return err
	}

	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a plan by ID, scoped to its owner
func (r *PlanRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*entities.Plan, error) {
	var m models.Plan
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m)
}

// GetLatest gets the most recently created plan for a user
func (r *PlanRepository) GetLatest(ctx context.Context, userID uuid.UUID) (*entities.Plan, error) {
	var m models.Plan
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m)
}

// List returns the user's plans newest first. limit 0 means all.
func (r *PlanRepository) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Plan, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var total int64
	if err := db.Model(&models.Plan{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var rows []models.Plan
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	plans := make([]*entities.Plan, 0, len(rows))
	for i := range rows {
		plan, err := r.toEntity(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		plans = append(plans, plan)
	}
	return plans, total, nil
}

// HasAny reports whether the user has at least one plan
func (r *PlanRepository) HasAny(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Plan{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ReplaceGoals rewrites the whole goal array of a plan. Last write wins
// at the document level; there is no optimistic lock.
func (r *PlanRepository) ReplaceGoals(ctx context.Context, userID, planID uuid.UUID, goals []entities.Goal) error {
	raw, err := json.Marshal(goals)
	if err != nil {
		return fmt.Errorf("failed to encode goals: %w", err)
	}

	res := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Plan{}).
		Where("id = ? AND user_id = ?", planID, userID).
		Update("goals", string(raw))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SetSaved toggles the saved flag on a plan
func (r *PlanRepository) SetSaved(ctx context.Context, userID, planID uuid.UUID, saved bool) error {
	res := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Plan{}).
		Where("id = ? AND user_id = ?", planID, userID).
		Update("saved", saved)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *PlanRepository) toModel(plan *entities.Plan) (*models.Plan, error) {
	goals := plan.Goals
	if goals == nil {
		goals = []entities.Goal{}
	}
	raw, err := json.Marshal(goals)
	if err != nil {
		return nil, fmt.Errorf("failed to encode goals: %w", err)
	}

	return &models.Plan{
		ID:               plan.ID,
		UserID:           plan.UserID,
		Title:            plan.Title,
		PlanText:         plan.PlanText,
		Goals:            string(raw),
		NetWorth:         plan.KeyMetrics.NetWorth,
		SavingsRate:      plan.KeyMetrics.SavingsRate,
		DebtToIncome:     plan.KeyMetrics.DebtToIncome,
		TotalDebt:        plan.KeyMetrics.TotalDebt,
		MonthlyNetSalary: plan.KeyMetrics.MonthlyNetSalary,
		Currency:         plan.Currency,
		Saved:            plan.Saved,
		CreatedAt:        plan.CreatedAt,
	}, nil
}

func (r *PlanRepository) toEntity(m *models.Plan) (*entities.Plan, error) {
	goals := []entities.Goal{}
	if m.Goals != "" {
		if err := json.Unmarshal([]byte(m.Goals), &goals); err != nil {
			return nil, fmt.Errorf("failed to decode goals for plan %s: %w", m.ID, err)
		}
	}

	return &entities.Plan{
		ID:       m.ID,
		UserID:   m.UserID,
		Title:    m.Title,
		PlanText: m.PlanText,
		Goals:    goals,
		KeyMetrics: entities.KeyMetrics{
			NetWorth:         m.NetWorth,
			SavingsRate:      m.SavingsRate,
			DebtToIncome:     m.DebtToIncome,
			TotalDebt:        m.TotalDebt,
			MonthlyNetSalary: m.MonthlyNetSalary,
		},
		Currency:  m.Currency,
		Saved:     m.Saved,
		CreatedAt: m.CreatedAt,
	}, nil
}
