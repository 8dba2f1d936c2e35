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

// DashboardService is the snapshot surface the handler depends on
type DashboardService interface {
	Snapshot(ctx context.Context, userID uuid.UUID) (*entities.DashboardState, error)
}

// DashboardHandler serves the aggregated dashboard snapshot
type DashboardHandler struct {
	dashboardUsecase DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardUsecase DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

// Get returns the dashboard snapshot for the authenticated user
// GET /api/v1/dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	state, err := h.dashboardUsecase.Snapshot(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, state)
}
