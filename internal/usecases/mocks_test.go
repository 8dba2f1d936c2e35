package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"finroute.backend/internal/domain/entities"
	"finroute.backend/internal/infrastructure/ai"
	"finroute.backend/pkg/logger"
)

func init() {
	logger.Init("test")
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Upsert(ctx context.Context, profile *entities.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) Create(ctx context.Context, plan *entities.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*entities.Plan, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Plan), args.Error(1)
}

func (m *MockPlanRepository) GetLatest(ctx context.Context, userID uuid.UUID) (*entities.Plan, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Plan), args.Error(1)
}

func (m *MockPlanRepository) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Plan, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entities.Plan), args.Get(1).(int64), args.Error(2)
}

func (m *MockPlanRepository) HasAny(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlanRepository) ReplaceGoals(ctx context.Context, userID, planID uuid.UUID, goals []entities.Goal) error {
	args := m.Called(ctx, userID, planID, goals)
	return args.Error(0)
}

func (m *MockPlanRepository) SetSaved(ctx context.Context, userID, planID uuid.UUID, saved bool) error {
	args := m.Called(ctx, userID, planID, saved)
	return args.Error(0)
}

type MockReminderRepository struct {
	mock.Mock
}

func (m *MockReminderRepository) Create(ctx context.Context, reminder *entities.Reminder) error {
	args := m.Called(ctx, reminder)
	return args.Error(0)
}

func (m *MockReminderRepository) ListActive(ctx context.Context, userID uuid.UUID) ([]*entities.Reminder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Reminder), args.Error(1)
}

func (m *MockReminderRepository) SoftDelete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

type MockAchievementRepository struct {
	mock.Mock
}

func (m *MockAchievementRepository) Create(ctx context.Context, achievement *entities.Achievement) error {
	args := m.Called(ctx, achievement)
	return args.Error(0)
}

func (m *MockAchievementRepository) List(ctx context.Context, userID uuid.UUID) ([]*entities.Achievement, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Achievement), args.Error(1)
}

// MockUnitOfWork runs the scoped function inline so assertions can see
// the writes that would happen inside the transaction.
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}

type MockPlanGenerator struct {
	mock.Mock
}

func (m *MockPlanGenerator) GeneratePlan(ctx context.Context, req *ai.Request) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}
