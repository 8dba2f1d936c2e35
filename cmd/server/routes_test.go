package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"finroute.backend/internal/interfaces/http/handlers"
)

func TestRegisterAPIV1Routes_RegistersKeyRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	registerAPIV1Routes(r, routeDeps{
		authHandler:      &handlers.AuthHandler{},
		profileHandler:   &handlers.ProfileHandler{},
		planHandler:      &handlers.PlanHandler{},
		dashboardHandler: &handlers.DashboardHandler{},
		reminderHandler:  &handlers.ReminderHandler{},
		sessionMiddleware: func(c *gin.Context) {
			c.Next()
		},
	})

	expects := []struct {
		method string
		path   string
	}{
		{"POST", "/api/v1/auth/register"},
		{"POST", "/api/v1/auth/login"},
		{"POST", "/api/v1/auth/logout"},
		{"GET", "/api/v1/auth/me"},
		{"GET", "/api/v1/profile"},
		{"PUT", "/api/v1/profile"},
		{"POST", "/api/v1/plans/generate"},
		{"GET", "/api/v1/plans"},
		{"GET", "/api/v1/plans/:id"},
		{"PUT", "/api/v1/plans/:id/saved"},
		{"PUT", "/api/v1/plans/goals/amount"},
		{"DELETE", "/api/v1/plans/goals"},
		{"GET", "/api/v1/dashboard"},
		{"POST", "/api/v1/reminders"},
		{"GET", "/api/v1/reminders"},
		{"DELETE", "/api/v1/reminders/:id"},
	}

	routes := r.Routes()
	for _, exp := range expects {
		found := false
		for _, route := range routes {
			if route.Method == exp.method && route.Path == exp.path {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("route %s %s not registered", exp.method, exp.path)
		}
	}
}

func TestRegisterAPIV1Routes_RouteResponds(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:       &handlers.AuthHandler{},
		profileHandler:    &handlers.ProfileHandler{},
		planHandler:       &handlers.PlanHandler{},
		dashboardHandler:  &handlers.DashboardHandler{},
		reminderHandler:   &handlers.ReminderHandler{},
		sessionMiddleware: func(c *gin.Context) { c.Next() },
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
