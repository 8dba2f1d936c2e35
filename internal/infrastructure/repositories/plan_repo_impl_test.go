package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"finroute.backend/internal/domain/entities"
	domainerrors "finroute.backend/internal/domain/errors"
)

func seedPlan(t *testing.T, repo *PlanRepository, userID uuid.UUID, title string, goals []entities.Goal) *entities.Plan {
	t.Helper()
	p := &entities.Plan{
		UserID:   userID,
		Title:    title,
		PlanText: "Narrative for " + title,
		Goals:    goals,
		KeyMetrics: entities.KeyMetrics{
			NetWorth:         10000,
			SavingsRate:      20,
			DebtToIncome:     50,
			TotalDebt:        1000,
			MonthlyNetSalary: 2000,
		},
		Currency: "USD",
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestPlanRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createPlanTable(t, db)
	repo := NewPlanRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	goals := []entities.Goal{
		{ID: uuid.New(), Name: "Car", TargetAmount: 20000, CurrentAmount: 5000, TargetDate: "2025-01-01"},
	}
	p := seedPlan(t, repo, userID, "Plan A", goals)
	require.NotEqual(t, uuid.Nil, p.ID)
	require.False(t, p.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, userID, p.ID)
	require.NoError(t, err)
	require.Equal(t, "Plan A", got.Title)
	require.Len(t, got.Goals, 1)
	require.Equal(t, "Car", got.Goals[0].Name)
	require.Equal(t, 50.0, got.KeyMetrics.DebtToIncome)

	// Scoped by owner: another user cannot read it
	_, err = repo.GetByID(ctx, uuid.New(), p.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestPlanRepository_GetLatestAndHasAny(t *testing.T) {
	db := newTestDB(t)
	createPlanTable(t, db)
	repo := NewPlanRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	has, err := repo.HasAny(ctx, userID)
	require.NoError(t, err)
	require.False(t, has)

	_, err = repo.GetLatest(ctx, userID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	seedPlan(t, repo, userID, "Old", nil)
	time.Sleep(5 * time.Millisecond)
	seedPlan(t, repo, userID, "New", nil)

	latest, err := repo.GetLatest(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, "New", latest.Title)

	has, err = repo.HasAny(ctx, userID)
	require.NoError(t, err)
	require.True(t, has)
}

func TestPlanRepository_List(t *testing.T) {
	db := newTestDB(t)
	createPlanTable(t, db)
	repo := NewPlanRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	for i := 0; i < 3; i++ {
		seedPlan(t, repo, userID, "Plan", nil)
		time.Sleep(5 * time.Millisecond)
	}
	seedPlan(t, repo, uuid.New(), "Other user", nil)

	all, total, err := repo.List(ctx, userID, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, int64(3), total)

	page, total, err := repo.List(ctx, userID, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, int64(3), total)
}

func TestPlanRepository_ReplaceGoals(t *testing.T) {
	db := newTestDB(t)
	createPlanTable(t, db)
	repo := NewPlanRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	goalID := uuid.New()
	p := seedPlan(t, repo, userID, "Plan", []entities.Goal{
		{ID: goalID, Name: "Car", TargetAmount: 20000, CurrentAmount: 5000, TargetDate: "2025-01-01"},
	})

	updated := []entities.Goal{
		{ID: goalID, Name: "Car", TargetAmount: 20000, CurrentAmount: 7000, TargetDate: "2025-01-01"},
	}
	require.NoError(t, repo.ReplaceGoals(ctx, userID, p.ID, updated))

	got, err := repo.GetByID(ctx, userID, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Goals, 1)
	require.Equal(t, 7000.0, got.Goals[0].CurrentAmount)
	require.Equal(t, 20000.0, got.Goals[0].TargetAmount)

	err = repo.ReplaceGoals(ctx, userID, uuid.New(), updated)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestPlanRepository_SetSaved(t *testing.T) {
	db := newTestDB(t)
	createPlanTable(t, db)
	repo := NewPlanRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	p := seedPlan(t, repo, userID, "Plan", nil)
	require.NoError(t, repo.SetSaved(ctx, userID, p.ID, true))

	got, err := repo.GetByID(ctx, userID, p.ID)
	require.NoError(t, err)
	require.True(t, got.Saved)

	err = repo.SetSaved(ctx, userID, uuid.New(), true)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
