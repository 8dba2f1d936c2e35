package repositories

import (
	"context"

	"github.com/google/uuid"
	"finroute.backend/internal/domain/entities"
)

// UserRepository defines account data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
}

// ProfileRepository defines financial-profile data operations.
// Each user owns exactly one profile record.
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *entities.Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error)
}
