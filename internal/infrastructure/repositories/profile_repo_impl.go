package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"finroute.backend/internal/domain/entities"
	domainerrors "finroute.backend/internal/domain/errors"
	"finroute.backend/internal/infrastructure/models"
)

// ProfileRepository implements financial-profile data operations
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Upsert creates the profile on first save and overwrites the mutable
// fields afterwards. CreatedAt survives updates.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *entities.Profile) error {
	now := time.Now()
	profile.UpdatedAt = now
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}

	m := &models.Profile{
		UserID:           profile.UserID,
		Email:            profile.Email,
		Age:              profile.Age,
		UserType:         profile.UserType,
		NetWorth:         profile.NetWorth,
		SavingsRate:      profile.SavingsRate,
		TotalDebt:        profile.TotalDebt,
		MonthlyNetSalary: profile.MonthlyNetSalary,
		Currency:         profile.Currency,
		CreatedAt:        profile.CreatedAt,
		UpdatedAt:        profile.UpdatedAt,
	}

	return GetDB(ctx, r.db).WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "age", "user_type", "net_worth", "savings_rate",
			"total_debt", "monthly_net_salary", "currency", "updated_at",
		}),
	}).Create(m).Error
}

// GetByUserID gets the profile for a user
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	var m models.Profile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	return &entities.Profile{
		UserID:           m.UserID,
		Email:            m.Email,
		Age:              m.Age,
		UserType:         m.UserType,
		NetWorth:         m.NetWorth,
		SavingsRate:      m.SavingsRate,
		TotalDebt:        m.TotalDebt,
		MonthlyNetSalary: m.MonthlyNetSalary,
		Currency:         m.Currency,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}, nil
}
