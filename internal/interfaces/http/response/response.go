package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "finroute.backend/internal/domain/errors"
	"finroute.backend/internal/usecases"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error maps an error onto the wire taxonomy and sends it. Sentinel
// domain errors get their well-known status; anything unrecognized is
// masked as a generic internal error so storage details never leak.
func Error(c *gin.Context, err error) {
	appErr := toAppError(err)
	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

// ValidationFailed sends the field-keyed validation error map
func ValidationFailed(c *gin.Context, errs usecases.ValidationErrors) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"code":    domainerrors.CodeValidationFailed,
		"message": "validation failed",
		"errors":  errs,
	})
}

func toAppError(err error) *domainerrors.AppError {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domainerrors.ErrProfileNotFound):
		return domainerrors.NotFound("profile not found")
	case errors.Is(err, domainerrors.ErrPlanNotFound):
		return domainerrors.NotFound("plan not found")
	case errors.Is(err, domainerrors.ErrGoalNotFound):
		return domainerrors.NotFound("goal not found")
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("resource not found")
	case errors.Is(err, domainerrors.ErrAINotConfigured):
		return domainerrors.NotConfigured("plan generation is not configured")
	case errors.Is(err, domainerrors.ErrEmptyPlan):
		return domainerrors.UpstreamFailed("the plan provider returned no plan", err)
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return domainerrors.Unauthorized("invalid email or password")
	case errors.Is(err, domainerrors.ErrUnauthorized), errors.Is(err, domainerrors.ErrTokenExpired):
		return domainerrors.Unauthorized("authentication required")
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict("resource already exists")
	default:
		return domainerrors.InternalError(err)
	}
}
