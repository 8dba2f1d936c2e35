package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"finroute.backend/internal/domain/entities"
	domainerrors "finroute.backend/internal/domain/errors"
	"finroute.backend/internal/interfaces/http/middleware"
	"finroute.backend/internal/interfaces/http/response"
	"finroute.backend/internal/usecases"
	"finroute.backend/pkg/utils"
)

// PlanService is the plan surface the handler depends on
type PlanService interface {
	Generate(ctx context.Context, userID uuid.UUID, input *entities.GeneratePlanInput) (*entities.PlanResult, usecases.ValidationErrors, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Plan, int64, error)
	Get(ctx context.Context, userID uuid.UUID, planID string) (*entities.Plan, error)
	SetSaved(ctx context.Context, userID, planID uuid.UUID, saved bool) error
	UpdateGoalAmount(ctx context.Context, userID uuid.UUID, input *entities.UpdateGoalAmountInput) (*entities.Plan, error)
	DeleteGoal(ctx context.Context, userID uuid.UUID, input *entities.DeleteGoalInput) (*entities.Plan, error)
}

// PlanHandler handles plan generation, reads and goal mutation
type PlanHandler struct {
	planUsecase PlanService
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(planUsecase PlanService) *PlanHandler {
	return &PlanHandler{planUsecase: planUsecase}
}

// Generate runs plan generation for the authenticated user. The body
// may be JSON or a urlencoded form with flattened goal-<id>-<field>
// keys; both decode into the same request.
// POST /api/v1/plans/generate
func (h *PlanHandler) Generate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input *entities.GeneratePlanInput
	if strings.HasPrefix(c.ContentType(), "application/json") {
		input = &entities.GeneratePlanInput{}
		if err := c.ShouldBindJSON(input); err != nil {
			response.Error(c, domainerrors.BadRequest(err.Error()))
			return
		}
	} else {
		if err := c.Request.ParseForm(); err != nil {
			response.Error(c, domainerrors.BadRequest("malformed form body"))
			return
		}
		var parseErrs usecases.ValidationErrors
		input, parseErrs = parseGeneratePlanForm(c.Request.PostForm)
		if !parseErrs.Valid() {
			response.ValidationFailed(c, parseErrs)
			return
		}
	}

	result, errs, err := h.planUsecase.Generate(c.Request.Context(), userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !errs.Valid() {
		response.ValidationFailed(c, errs)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// List returns the user's plans, newest first
// GET /api/v1/plans?page=1&limit=10
func (h *PlanHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	params := utils.GetPaginationParams(page, limit)

	plans, total, err := h.planUsecase.List(c.Request.Context(), userID, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"plans":      plans,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// Get returns one plan by ID
// GET /api/v1/plans/:id
func (h *PlanHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	plan, err := h.planUsecase.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, plan)
}

// SetSaved toggles a plan's saved flag
// PUT /api/v1/plans/:id/saved
func (h *PlanHandler) SetSaved(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid plan id"))
		return
	}

	var body struct {
		Saved bool `json:"saved"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.planUsecase.SetSaved(c.Request.Context(), userID, planID, body.Saved); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"saved": body.Saved})
}

// UpdateGoalAmount replaces a goal's current amount
// PUT /api/v1/plans/goals/amount
func (h *PlanHandler) UpdateGoalAmount(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.UpdateGoalAmountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	plan, err := h.planUsecase.UpdateGoalAmount(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, plan)
}

// DeleteGoal removes a goal from a plan
// DELETE /api/v1/plans/goals
func (h *PlanHandler) DeleteGoal(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.DeleteGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	plan, err := h.planUsecase.DeleteGoal(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, plan)
}
