package handler

import (
	"net/http"

	"schoolhub/internal/delivery/api/middleware"
	"schoolhub/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// TestHandler handles test endpoints for middleware validation
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// Welcome echoes the verified token claims back to the caller.
func (h *TestHandler) Welcome(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user": map[string]any{
			"id":               claims.ID,
			"uniqueIdentifier": claims.UniqueIdentifier,
			"iat":              claims.IssuedAt,
			"exp":              claims.ExpiresAt,
		},
	}, "Welcome!")
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "healthy")
}
