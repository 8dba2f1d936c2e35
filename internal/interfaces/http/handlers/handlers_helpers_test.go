package handlers

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"finroute.backend/internal/domain/entities"
	"finroute.backend/internal/interfaces/http/middleware"
	"finroute.backend/internal/usecases"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// authedAs injects an authenticated user the way SessionMiddleware
// would
func authedAs(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doForm(r *gin.Engine, method, path, form string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type authServiceStub struct {
	registerFn    func(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error)
	loginFn       func(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error)
	getUserByIDFn func(ctx context.Context, id uuid.UUID) (*entities.User, error)
}

func (s authServiceStub) Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error) {
	return s.registerFn(ctx, input)
}
func (s authServiceStub) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	return s.loginFn(ctx, input)
}
func (s authServiceStub) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return s.getUserByIDFn(ctx, id)
}

type profileServiceStub struct {
	getFn  func(ctx context.Context, userID uuid.UUID) (*entities.Profile, error)
	saveFn func(ctx context.Context, userID uuid.UUID, input *entities.SaveProfileInput) (*entities.Profile, error)
}

func (s profileServiceStub) GetProfile(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	return s.getFn(ctx, userID)
}
func (s profileServiceStub) SaveProfile(ctx context.Context, userID uuid.UUID, input *entities.SaveProfileInput) (*entities.Profile, error) {
	return s.saveFn(ctx, userID, input)
}

type planServiceStub struct {
	generateFn         func(ctx context.Context, userID uuid.UUID, input *entities.GeneratePlanInput) (*entities.PlanResult, usecases.ValidationErrors, error)
	listFn             func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Plan, int64, error)
	getFn              func(ctx context.Context, userID uuid.UUID, planID string) (*entities.Plan, error)
	setSavedFn         func(ctx context.Context, userID, planID uuid.UUID, saved bool) error
	updateGoalAmountFn func(ctx context.Context, userID uuid.UUID, input *entities.UpdateGoalAmountInput) (*entities.Plan, error)
	deleteGoalFn       func(ctx context.Context, userID uuid.UUID, input *entities.DeleteGoalInput) (*entities.Plan, error)
}

func (s planServiceStub) Generate(ctx context.Context, userID uuid.UUID, input *entities.GeneratePlanInput) (*entities.PlanResult, usecases.ValidationErrors, error) {
	return s.generateFn(ctx, userID, input)
}
func (s planServiceStub) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Plan, int64, error) {
	return s.listFn(ctx, userID, limit, offset)
}
func (s planServiceStub) Get(ctx context.Context, userID uuid.UUID, planID string) (*entities.Plan, error) {
	return s.getFn(ctx, userID, planID)
}
func (s planServiceStub) SetSaved(ctx context.Context, userID, planID uuid.UUID, saved bool) error {
	return s.setSavedFn(ctx, userID, planID, saved)
}
func (s planServiceStub) UpdateGoalAmount(ctx context.Context, userID uuid.UUID, input *entities.UpdateGoalAmountInput) (*entities.Plan, error) {
	return s.updateGoalAmountFn(ctx, userID, input)
}
func (s planServiceStub) DeleteGoal(ctx context.Context, userID uuid.UUID, input *entities.DeleteGoalInput) (*entities.Plan, error) {
	return s.deleteGoalFn(ctx, userID, input)
}

type dashboardServiceStub struct {
	snapshotFn func(ctx context.Context, userID uuid.UUID) (*entities.DashboardState, error)
}

func (s dashboardServiceStub) Snapshot(ctx context.Context, userID uuid.UUID) (*entities.DashboardState, error) {
	return s.snapshotFn(ctx, userID)
}

type reminderServiceStub struct {
	createFn func(ctx context.Context, userID uuid.UUID, input *entities.CreateReminderInput) (*entities.Reminder, error)
	listFn   func(ctx context.Context, userID uuid.UUID) ([]*entities.Reminder, error)
	deleteFn func(ctx context.Context, userID, reminderID uuid.UUID) error
}

func (s reminderServiceStub) Create(ctx context.Context, userID uuid.UUID, input *entities.CreateReminderInput) (*entities.Reminder, error) {
	return s.createFn(ctx, userID, input)
}
func (s reminderServiceStub) List(ctx context.Context, userID uuid.UUID) ([]*entities.Reminder, error) {
	return s.listFn(ctx, userID)
}
func (s reminderServiceStub) Delete(ctx context.Context, userID, reminderID uuid.UUID) error {
	return s.deleteFn(ctx, userID, reminderID)
}
