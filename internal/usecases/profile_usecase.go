package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"finroute.backend/internal/domain/entities"
	domainerrors "finroute.backend/internal/domain/errors"
	"finroute.backend/internal/domain/repositories"
)

// ProfileUsecase handles financial-profile reads and saves
type ProfileUsecase struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
) *ProfileUsecase {
	return &ProfileUsecase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// GetProfile returns the user's profile
func (u *ProfileUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	return u.profileRepo.GetByUserID(ctx, userID)
}

// SaveProfile overwrites the profile's mutable fields. The profile is
// created here if signup predates profile seeding.
func (u *ProfileUsecase) SaveProfile(ctx context.Context, userID uuid.UUID, input *entities.SaveProfileInput) (*entities.Profile, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		user, err := u.userRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		profile = &entities.Profile{UserID: userID, Email: user.Email}
	}

	profile.Age = input.Age
	profile.UserType = input.UserType
	profile.NetWorth = input.NetWorth
	profile.SavingsRate = input.SavingsRate
	profile.TotalDebt = input.TotalDebt
	profile.MonthlyNetSalary = input.MonthlyNetSalary
	if input.Currency != "" {
		profile.Currency = input.Currency
	}
	if profile.Currency == "" {
		profile.Currency = DefaultCurrency
	}

	if err := u.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
