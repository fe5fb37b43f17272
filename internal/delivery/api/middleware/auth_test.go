package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "schoolhub/internal/delivery/context"
	"schoolhub/internal/domain/service"
	mockSvc "schoolhub/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) (*echo.Echo, *mockSvc.MockTokenService) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokenSvc := mockSvc.NewMockTokenService(t)
	auth := NewAuthMiddleware(tokenSvc, logger)

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(logger).HandleHTTPError
	e.GET("/me", func(c echo.Context) error {
		userID, ok := GetUserID(c)
		if !ok {
			return c.NoContent(http.StatusTeapot)
		}
		ctxUserID, _ := deliverycontext.GetUserIDFromContext(c.Request().Context())
		claims, _ := GetClaims(c)

		return c.JSON(http.StatusOK, map[string]string{
			"id":     userID.String(),
			"ctxId":  ctxUserID.String(),
			"unique": claims.UniqueIdentifier,
		})
	}, auth.Authenticate)

	return e, tokenSvc
}

func TestAuthenticate_ValidToken(t *testing.T) {
	e, tokenSvc := newTestEcho(t)
	userID := uuid.New()
	tokenSvc.EXPECT().ValidateToken("good-token").Return(&service.Claims{ID: userID, UniqueIdentifier: "1700000000000"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, userID.String(), body["id"])
	assert.Equal(t, userID.String(), body["ctxId"])
	assert.Equal(t, "1700000000000", body["unique"])
}

func TestAuthenticate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(tokenSvc *mockSvc.MockTokenService)
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer token", header: "Basic abc"},
		{name: "empty bearer token", header: "Bearer   "},
		{
			name:   "invalid token",
			header: "Bearer bad-token",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("bad-token").Return(nil, assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, tokenSvc := newTestEcho(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), `"message":"Unauthorized"`)
		})
	}
}

func TestBearerToken(t *testing.T) {
	token, ok := bearerToken("bearer abc.def")
	assert.True(t, ok)
	assert.Equal(t, "abc.def", token)

	_, ok = bearerToken("Bearer")
	assert.False(t, ok)
}
