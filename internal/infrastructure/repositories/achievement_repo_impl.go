package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"finroute.backend/internal/domain/entities"
	"finroute.backend/internal/infrastructure/models"
	"finroute.backend/pkg/utils"
)

// AchievementRepository implements achievement operations (append-only)
type AchievementRepository struct {
	db *gorm.DB
}

// NewAchievementRepository creates a new achievement repository
func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// Create appends a new achievement
func (r *AchievementRepository) Create(ctx context.Context, achievement *entities.Achievement) error {
	if achievement.ID == uuid.Nil {
		achievement.ID = utils.GenerateUUIDv7()
	}
	achievement.CreatedAt = time.Now()

	m := &models.Achievement{
		ID:        achievement.ID,
		UserID:    achievement.UserID,
		Title:     achievement.Title,
		Icon:      achievement.Icon,
		Code:      achievement.Code,
		CreatedAt: achievement.CreatedAt,
	}

	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// List returns achievements newest first
func (r *AchievementRepository) List(ctx context.Context, userID uuid.UUID) ([]*entities.Achievement, error) {
	var rows []models.Achievement
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	achievements := make([]*entities.Achievement, 0, len(rows))
	for i := range rows {
		m := rows[i]
		achievements = append(achievements, &entities.Achievement{
			ID:        m.ID,
			UserID:    m.UserID,
			Title:     m.Title,
			Icon:      m.Icon,
			Code:      m.Code,
			CreatedAt: m.CreatedAt,
		})
	}
	return achievements, nil
}
