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

// ReminderService is the reminder surface the handler depends on
type ReminderService interface {
	Create(ctx context.Context, userID uuid.UUID, input *entities.CreateReminderInput) (*entities.Reminder, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entities.Reminder, error)
	Delete(ctx context.Context, userID, reminderID uuid.UUID) error
}

// ReminderHandler handles reminder endpoints
type ReminderHandler struct {
	reminderUsecase ReminderService
}

// NewReminderHandler creates a new reminder handler
func NewReminderHandler(reminderUsecase ReminderService) *ReminderHandler {
	return &ReminderHandler{reminderUsecase: reminderUsecase}
}

// Create adds a reminder
// POST /api/v1/reminders
func (h *ReminderHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.CreateReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	reminder, err := h.reminderUsecase.Create(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, reminder)
}

// List returns the user's active reminders
// GET /api/v1/reminders
func (h *ReminderHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	reminders, err := h.reminderUsecase.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reminders": reminders})
}

// Delete tombstones a reminder
// DELETE /api/v1/reminders/:id
func (h *ReminderHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	reminderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid reminder id"))
		return
	}

	if err := h.reminderUsecase.Delete(c.Request.Context(), userID, reminderID); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("reminder not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "reminder deleted"})
}
