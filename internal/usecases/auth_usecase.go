package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"finroute.backend/internal/domain/entities"
	domainerrors "finroute.backend/internal/domain/errors"
	"finroute.backend/internal/domain/repositories"
	"finroute.backend/pkg/crypto"
	"finroute.backend/pkg/jwt"
)

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo       repositories.UserRepository
	profileRepo    repositories.ProfileRepository
	sessionService *jwt.SessionService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	sessionService *jwt.SessionService,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:       userRepo,
		profileRepo:    profileRepo,
		sessionService: sessionService,
	}
}

// Register creates an account and seeds its profile record
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error) {
	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        input.Email,
		PasswordHash: passwordHash,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Seed the singleton profile; plan generation requires it to exist
	profile := &entities.Profile{
		UserID:   user.ID,
		Email:    user.Email,
		Age:      input.Age,
		UserType: input.UserType,
		Currency: DefaultCurrency,
	}
	if err := u.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	token, err := u.sessionService.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{Token: token, User: user}, nil
}

// Login authenticates a user and issues a session token
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := u.sessionService.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{Token: token, User: user}, nil
}

// GetUserByID fetches a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}
