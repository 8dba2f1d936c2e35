package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"finroute.backend/internal/domain/entities"
	domainerrors "finroute.backend/internal/domain/errors"
)

func TestProfileRepository_UpsertAndGet(t *testing.T) {
	db := newTestDB(t)
	createProfileTable(t, db)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	p := &entities.Profile{
		UserID:           userID,
		Email:            "amara@example.com",
		Age:              31,
		UserType:         "salaried",
		NetWorth:         120000,
		SavingsRate:      25,
		TotalDebt:        4000,
		MonthlyNetSalary: 5200,
		Currency:         "USD",
	}
	require.NoError(t, repo.Upsert(ctx, p))

	got, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 31, got.Age)
	require.Equal(t, 120000.0, got.NetWorth)
	created := got.CreatedAt

	// Second save overwrites mutable fields but keeps created_at
	p.NetWorth = 125000
	p.SavingsRate = 27
	p.CreatedAt = created
	require.NoError(t, repo.Upsert(ctx, p))

	got, err = repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 125000.0, got.NetWorth)
	require.Equal(t, 27.0, got.SavingsRate)
	require.Equal(t, created.Unix(), got.CreatedAt.Unix())
}

func TestProfileRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	createProfileTable(t, db)
	repo := NewProfileRepository(db)

	_, err := repo.GetByUserID(context.Background(), uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
