package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"finroute.backend/pkg/jwt"
	"finroute.backend/pkg/logger"
)

const (
	// UserIDKey is the context key for the authenticated user ID
	UserIDKey = "user_id"
)

// SessionMiddleware authenticates requests from the session cookie.
// Every failure mode produces the same 401 body: a missing cookie, a
// tampered token and an expired one are indistinguishable to clients.
func SessionMiddleware(sessions *jwt.SessionService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			unauthorized(c)
			return
		}

		claims, err := sessions.Verify(token)
		if err != nil {
			logger.Debug(c.Request.Context(), "session rejected",
				zap.String("path", c.Request.URL.Path), zap.Error(err))
			unauthorized(c)
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code":    "UNAUTHORIZED",
		"message": "authentication required",
	})
}

// GetUserID gets the authenticated user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	return id, ok
}
