package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"finroute.backend/internal/domain/entities"
	domainerrors "finroute.backend/internal/domain/errors"
)

func newProfileRouter(userID uuid.UUID, stub profileServiceStub) *gin.Engine {
	h := NewProfileHandler(stub)
	r := gin.New()
	auth := authedAs(userID)
	r.GET("/profile", auth, h.Get)
	r.PUT("/profile", auth, h.Save)
	return r
}

func TestProfileGet(t *testing.T) {
	userID := uuid.New()
	r := newProfileRouter(userID, profileServiceStub{
		getFn: func(_ context.Context, uid uuid.UUID) (*entities.Profile, error) {
			return &entities.Profile{UserID: uid, Email: "user@example.com", Currency: "USD"}, nil
		},
	})

	w := doJSON(r, http.MethodGet, "/profile", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user@example.com")
}

func TestProfileGet_NotFound(t *testing.T) {
	r := newProfileRouter(uuid.New(), profileServiceStub{
		getFn: func(_ context.Context, _ uuid.UUID) (*entities.Profile, error) {
			return nil, domainerrors.ErrNotFound
		},
	})

	w := doJSON(r, http.MethodGet, "/profile", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "profile not found")
}

func TestProfileSave(t *testing.T) {
	userID := uuid.New()
	var received *entities.SaveProfileInput
	r := newProfileRouter(userID, profileServiceStub{
		saveFn: func(_ context.Context, uid uuid.UUID, input *entities.SaveProfileInput) (*entities.Profile, error) {
			received = input
			return &entities.Profile{UserID: uid, Age: input.Age, Currency: input.Currency}, nil
		},
	})

	w := doJSON(r, http.MethodPut, "/profile", `{"age":31,"netWorth":12000,"savingsRate":25,"currency":"KES"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, received)
	assert.Equal(t, 31, received.Age)
	assert.Equal(t, float64(12000), received.NetWorth)
	assert.Equal(t, "KES", received.Currency)
}

func TestProfileSave_BindingFailure(t *testing.T) {
	r := newProfileRouter(uuid.New(), profileServiceStub{})

	w := doJSON(r, http.MethodPut, "/profile", `{"savingsRate":250}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
