package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"finroute.backend/internal/domain/entities"
	domainerrors "finroute.backend/internal/domain/errors"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &entities.User{
		Email:        "amara@example.com",
		PasswordHash: "$2a$12$hash",
	}
	require.NoError(t, repo.Create(ctx, u))
	require.NotEqual(t, uuid.Nil, u.ID)
	require.False(t, u.CreatedAt.IsZero())

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, byID.Email)

	byEmail, err := repo.GetByEmail(ctx, "amara@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.User{Email: "dup@example.com", PasswordHash: "h"}))
	err := repo.Create(ctx, &entities.User{Email: "dup@example.com", PasswordHash: "h"})
	require.Error(t, err)
}

func TestUserRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "ghost@example.com")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
