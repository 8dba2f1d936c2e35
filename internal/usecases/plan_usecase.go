package usecases

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"finroute.backend/internal/domain/entities"
	domainerrors "finroute.backend/internal/domain/errors"
	"finroute.backend/internal/domain/repositories"
	"finroute.backend/internal/infrastructure/ai"
	"finroute.backend/pkg/logger"
)

// PlanGenerator is the external AI provider contract. It either
// produces narrative plan text or fails; an empty string with nil
// error counts as "could not generate".
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, req *ai.Request) (string, error)
}

// PlanUsecase orchestrates plan generation and goal mutation
type PlanUsecase struct {
	planRepo        repositories.PlanRepository
	achievementRepo repositories.AchievementRepository
	profileRepo     repositories.ProfileRepository
	uow             repositories.UnitOfWork
	generator       PlanGenerator
	aiConfigured    bool
}

// NewPlanUsecase creates a new plan usecase. generator may be nil when
// no AI credential is configured; Generate then fails closed.
func NewPlanUsecase(
	planRepo repositories.PlanRepository,
	achievementRepo repositories.AchievementRepository,
	profileRepo repositories.ProfileRepository,
	uow repositories.UnitOfWork,
	generator PlanGenerator,
	aiConfigured bool,
) *PlanUsecase {
	return &PlanUsecase{
		planRepo:        planRepo,
		achievementRepo: achievementRepo,
		profileRepo:     profileRepo,
		uow:             uow,
		generator:       generator,
		aiConfigured:    aiConfigured,
	}
}

// DebtToIncome computes round(totalDebt / monthlyNetSalary * 100).
// A zero or negative salary yields 0 rather than dividing by zero.
func DebtToIncome(totalDebt, monthlyNetSalary float64) float64 {
	if monthlyNetSalary <= 0 {
		return 0
	}
	return math.Round(totalDebt / monthlyNetSalary * 100)
}

// Generate runs the full generation pipeline. Validation failures come
// back as a non-empty ValidationErrors with nil error and no writes;
// every other failure mode is an error. The plan and its achievement
// are persisted in one transaction.
func (u *PlanUsecase) Generate(ctx context.Context, userID uuid.UUID, input *entities.GeneratePlanInput) (*entities.PlanResult, ValidationErrors, error) {
	if !u.aiConfigured || u.generator == nil {
		return nil, nil, domainerrors.ErrAINotConfigured
	}

	if errs := ValidateGeneratePlanInput(input); !errs.Valid() {
		return nil, errs, nil
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, nil, domainerrors.ErrProfileNotFound
		}
		return nil, nil, err
	}

	currency := input.Currency
	if currency == "" {
		currency = profile.Currency
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	goals := NormalizeGoals(input.Goals)
	metrics := entities.KeyMetrics{
		NetWorth:         input.NetWorth,
		SavingsRate:      input.SavingsRate,
		DebtToIncome:     DebtToIncome(input.TotalDebt, input.MonthlyNetSalary),
		TotalDebt:        input.TotalDebt,
		MonthlyNetSalary: input.MonthlyNetSalary,
	}

	planText, err := u.generator.GeneratePlan(ctx, &ai.Request{
		Age:            profile.Age,
		CurrencySymbol: CurrencySymbol(currency),
		Goals:          goals,
		Metrics:        metrics,
	})
	if err != nil {
		logger.Error(ctx, "plan generation call failed", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, nil, fmt.Errorf("%w: %v", domainerrors.ErrEmptyPlan, err)
	}
	if planText == "" {
		return nil, nil, domainerrors.ErrEmptyPlan
	}

	hadPrior, err := u.planRepo.HasAny(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	plan := &entities.Plan{
		UserID:     userID,
		Title:      fmt.Sprintf("Financial Plan %s", time.Now().Format("Jan 2, 2006")),
		PlanText:   planText,
		Goals:      goals,
		KeyMetrics: metrics,
		Currency:   currency,
	}

	persisted := entities.PlannerAchievement(userID)
	if !hadPrior {
		persisted = entities.FirstPlannerAchievement(userID)
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.planRepo.Create(txCtx, plan); err != nil {
			return err
		}
		return u.achievementRepo.Create(txCtx, persisted)
	})
	if err != nil {
		return nil, nil, err
	}

	// The achievement echoed to the caller follows the client's own
	// isFirstPlan flag, which can disagree with the persisted tier
	// when the flag is stale.
	returned := persisted
	if input.IsFirstPlan == hadPrior {
		if input.IsFirstPlan {
			returned = entities.FirstPlannerAchievement(userID)
		} else {
			returned = entities.PlannerAchievement(userID)
		}
	}

	logger.Info(ctx, "plan generated",
		zap.String("user_id", userID.String()),
		zap.String("plan_id", plan.ID.String()),
		zap.String("achievement", persisted.Code),
	)

	return &entities.PlanResult{Plan: plan, Achievement: returned}, nil, nil
}

// List returns the user's plans, newest first, with the total count
func (u *PlanUsecase) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Plan, int64, error) {
	plans, total, err := u.planRepo.List(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if plans == nil {
		plans = []*entities.Plan{}
	}
	return plans, total, nil
}

// Get returns one plan addressed by its id
func (u *PlanUsecase) Get(ctx context.Context, userID uuid.UUID, planID string) (*entities.Plan, error) {
	if planID == "" {
		return nil, domainerrors.BadRequest("plan id is required")
	}
	return u.resolvePlan(ctx, userID, planID)
}

// resolvePlan returns the addressed plan: explicit id when given,
// otherwise the most recent one.
func (u *PlanUsecase) resolvePlan(ctx context.Context, userID uuid.UUID, planID string) (*entities.Plan, error) {
	var plan *entities.Plan
	var err error

	if planID != "" {
		id, parseErr := uuid.Parse(planID)
		if parseErr != nil {
			return nil, domainerrors.BadRequest("invalid plan id")
		}
		plan, err = u.planRepo.GetByID(ctx, userID, id)
	} else {
		plan, err = u.planRepo.GetLatest(ctx, userID)
	}

	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

// UpdateGoalAmount replaces a goal's current amount and writes the
// whole array back. The create-time bound check applies here too: the
// new amount must stay within [0, targetAmount].
func (u *PlanUsecase) UpdateGoalAmount(ctx context.Context, userID uuid.UUID, input *entities.UpdateGoalAmountInput) (*entities.Plan, error) {
	plan, err := u.resolvePlan(ctx, userID, input.PlanID)
	if err != nil {
		return nil, err
	}

	matched := false
	for i := range plan.Goals {
		if !goalMatches(&plan.Goals[i], input.GoalID, input.GoalName) {
			continue
		}
		if input.CurrentAmount < 0 || input.CurrentAmount > plan.Goals[i].TargetAmount {
			return nil, domainerrors.BadRequest("current amount must be between 0 and the target amount")
		}
		plan.Goals[i].CurrentAmount = input.CurrentAmount
		matched = true
		break
	}
	if !matched {
		return nil, domainerrors.ErrGoalNotFound
	}

	if err := u.planRepo.ReplaceGoals(ctx, userID, plan.ID, plan.Goals); err != nil {
		return nil, err
	}
	return plan, nil
}

// DeleteGoal removes a goal from a plan's array. Addressing by id
// removes exactly one goal; addressing by name removes every goal with
// that name, which is the documented cost of the name shim.
func (u *PlanUsecase) DeleteGoal(ctx context.Context, userID uuid.UUID, input *entities.DeleteGoalInput) (*entities.Plan, error) {
	plan, err := u.resolvePlan(ctx, userID, input.PlanID)
	if err != nil {
		return nil, err
	}

	kept := make([]entities.Goal, 0, len(plan.Goals))
	removed := 0
	for i := range plan.Goals {
		if goalMatches(&plan.Goals[i], input.GoalID, input.GoalName) {
			if input.GoalID == "" || removed == 0 {
				removed++
				continue
			}
		}
		kept = append(kept, plan.Goals[i])
	}
	if removed == 0 {
		return nil, domainerrors.ErrGoalNotFound
	}

	plan.Goals = kept
	if err := u.planRepo.ReplaceGoals(ctx, userID, plan.ID, kept); err != nil {
		return nil, err
	}
	return plan, nil
}

// SetSaved toggles a plan's saved flag
func (u *PlanUsecase) SetSaved(ctx context.Context, userID uuid.UUID, planID uuid.UUID, saved bool) error {
	err := u.planRepo.SetSaved(ctx, userID, planID, saved)
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.ErrPlanNotFound
	}
	return err
}

// goalMatches prefers the stable goal id; name matching is the
// compatibility shim for clients that predate goal ids.
func goalMatches(g *entities.Goal, goalID, goalName string) bool {
	if goalID != "" {
		id, err := uuid.Parse(goalID)
		return err == nil && g.ID == id
	}
	return goalName != "" && g.Name == goalName
}
