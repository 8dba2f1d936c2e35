package usecases

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"finroute.backend/internal/domain/entities"
	domainerrors "finroute.backend/internal/domain/errors"
	"finroute.backend/internal/domain/repositories"
	"finroute.backend/pkg/logger"
)

// DashboardUsecase folds all persisted state for a user into one
// read-model snapshot. It never caches; every call re-reads the store.
type DashboardUsecase struct {
	planRepo        repositories.PlanRepository
	reminderRepo    repositories.ReminderRepository
	achievementRepo repositories.AchievementRepository
}

// NewDashboardUsecase creates a new dashboard usecase
func NewDashboardUsecase(
	planRepo repositories.PlanRepository,
	reminderRepo repositories.ReminderRepository,
	achievementRepo repositories.AchievementRepository,
) *DashboardUsecase {
	return &DashboardUsecase{
		planRepo:        planRepo,
		reminderRepo:    reminderRepo,
		achievementRepo: achievementRepo,
	}
}

// Snapshot performs four independent reads concurrently and folds them
// into a DashboardState. A user with no plans gets a well-defined empty
// state. Reminder and achievement failures degrade to empty lists so
// supplementary data never blocks the goal-critical view.
func (u *DashboardUsecase) Snapshot(ctx context.Context, userID uuid.UUID) (*entities.DashboardState, error) {
	var (
		latest       *entities.Plan
		latestErr    error
		plans        []*entities.Plan
		plansErr     error
		reminders    []*entities.Reminder
		remindersErr error
		achievements []*entities.Achievement
		achErr       error
	)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		latest, latestErr = u.planRepo.GetLatest(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		plans, _, plansErr = u.planRepo.List(ctx, userID, 0, 0)
	}()
	go func() {
		defer wg.Done()
		reminders, remindersErr = u.reminderRepo.ListActive(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		achievements, achErr = u.achievementRepo.List(ctx, userID)
	}()
	wg.Wait()

	if latestErr != nil && !errors.Is(latestErr, domainerrors.ErrNotFound) {
		return nil, latestErr
	}
	if plansErr != nil {
		return nil, plansErr
	}

	if remindersErr != nil {
		logger.Warn(ctx, "reminder read degraded to empty", zap.Error(remindersErr), zap.String("user_id", userID.String()))
		reminders = []*entities.Reminder{}
	}
	if achErr != nil {
		logger.Warn(ctx, "achievement read degraded to empty", zap.Error(achErr), zap.String("user_id", userID.String()))
		achievements = []*entities.Achievement{}
	}
	if reminders == nil {
		reminders = []*entities.Reminder{}
	}
	if achievements == nil {
		achievements = []*entities.Achievement{}
	}

	state := &entities.DashboardState{
		Plan:         latest,
		PlansCount:   len(plans),
		AllGoals:     []entities.DashboardGoal{},
		Reminders:    reminders,
		Achievements: achievements,
		Currency:     DefaultCurrency,
	}

	if latest != nil {
		state.Currency = latest.Currency
	}

	for _, plan := range plans {
		for _, g := range plan.Goals {
			state.AllGoals = append(state.AllGoals, entities.DashboardGoal{
				Goal:          g,
				PlanID:        plan.ID,
				PlanCreatedAt: plan.CreatedAt,
			})
		}
	}
	state.TotalGoals = len(state.AllGoals)

	return state, nil
}
