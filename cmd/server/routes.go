package main

import (
	"github.com/gin-gonic/gin"
	"finroute.backend/internal/interfaces/http/handlers"
	"finroute.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler       *handlers.AuthHandler
	profileHandler    *handlers.ProfileHandler
	planHandler       *handlers.PlanHandler
	dashboardHandler  *handlers.DashboardHandler
	reminderHandler   *handlers.ReminderHandler
	sessionMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (register/login/logout public, me protected)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/logout", d.authHandler.Logout)
			auth.GET("/me", d.sessionMiddleware, d.authHandler.Me)
		}

		// Profile routes (protected)
		profile := v1.Group("/profile")
		profile.Use(d.sessionMiddleware)
		{
			profile.GET("", d.profileHandler.Get)
			profile.PUT("", d.profileHandler.Save)
		}

		// Plan routes (protected). Generation is idempotent under a
		// client-supplied Idempotency-Key.
		plans := v1.Group("/plans")
		plans.Use(d.sessionMiddleware)
		{
			plans.POST("/generate", middleware.IdempotencyMiddleware(), d.planHandler.Generate)
			plans.GET("", d.planHandler.List)
			plans.PUT("/goals/amount", d.planHandler.UpdateGoalAmount)
			plans.DELETE("/goals", d.planHandler.DeleteGoal)
			plans.GET("/:id", d.planHandler.Get)
			plans.PUT("/:id/saved", d.planHandler.SetSaved)
		}

		// Dashboard route (protected)
		v1.GET("/dashboard", d.sessionMiddleware, d.dashboardHandler.Get)

		// Reminder routes (protected)
		reminders := v1.Group("/reminders")
		reminders.Use(d.sessionMiddleware)
		{
			reminders.POST("", d.reminderHandler.Create)
			reminders.GET("", d.reminderHandler.List)
			reminders.DELETE("/:id", d.reminderHandler.Delete)
		}
	}
}
