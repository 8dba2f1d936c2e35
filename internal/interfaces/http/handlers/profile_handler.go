package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"finroute.backend/internal/domain/entities"
	domainerrors "finroute.backend/internal/domain/errors"
	"finroute.backend/internal/interfaces/http/middleware"
	"finroute.backend/internal/interfaces/http/response"
)

// ProfileService is the profile surface the handler depends on
type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entities.Profile, error)
	SaveProfile(ctx context.Context, userID uuid.UUID, input *entities.SaveProfileInput) (*entities.Profile, error)
}

// ProfileHandler handles financial-profile endpoints
type ProfileHandler struct {
	profileUsecase ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileUsecase ProfileService) *ProfileHandler {
	return &ProfileHandler{profileUsecase: profileUsecase}
}

// Get returns the authenticated user's profile
// GET /api/v1/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	profile, err := h.profileUsecase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.ErrProfileNotFound)
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// Save overwrites the profile's financial fields
// PUT /api/v1/profile
func (h *ProfileHandler) Save(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.SaveProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUsecase.SaveProfile(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}
