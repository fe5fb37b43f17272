package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"schoolhub/internal/delivery/api/middleware"
	"schoolhub/internal/delivery/api/validator"
	"schoolhub/internal/domain/service"
	mockSvc "schoolhub/internal/mocks/service"
	mockUC "schoolhub/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "valid-token"

type testServer struct {
	e         *echo.Echo
	accountUC *mockUC.MockAccountUsecase
	statsUC   *mockUC.MockStatsUsecase
	callerID  uuid.UUID
}

// newTestServer mounts the handlers behind the real auth and error middleware.
// Requests carrying testToken authenticate as callerID.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := &testServer{
		e:         echo.New(),
		accountUC: mockUC.NewMockAccountUsecase(t),
		statsUC:   mockUC.NewMockStatsUsecase(t),
		callerID:  uuid.New(),
	}

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken(testToken).
		Return(&service.Claims{ID: ts.callerID, UniqueIdentifier: "1700000000000"}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken(mock.MatchedBy(func(tok string) bool { return tok != testToken })).
		Return(nil, io.ErrUnexpectedEOF).Maybe()

	auth := middleware.NewAuthMiddleware(tokenSvc, logger)
	accountHandler := NewAccountHandler(AccountHandlerParams{AccountUC: ts.accountUC, Logger: logger})
	statsHandler := NewStatsHandler(ts.statsUC)
	testHandler := NewTestHandler()

	ts.e.Validator = validator.New()
	ts.e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	ts.e.GET("/health", HealthCheck)
	ts.e.POST("/auth/create_user", accountHandler.CreateAccount)
	ts.e.POST("/auth/login", accountHandler.Login)
	ts.e.GET("/auth/stats", statsHandler.GetStats)
	ts.e.PUT("/auth/update", accountHandler.UpdateProfile, auth.Authenticate)
	ts.e.POST("/auth/upload", accountHandler.UploadPhoto, auth.Authenticate)
	ts.e.GET("/auth/getuser", accountHandler.GetProfile, auth.Authenticate)
	ts.e.GET("/auth/test", testHandler.Welcome, auth.Authenticate)

	return ts
}

func (ts *testServer) do(method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string          `json:"code"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	require.Equal(t, rec.Code, env.Code)

	return env
}

func decodeData(t *testing.T, env envelope, out any) {
	t.Helper()

	require.NoError(t, json.Unmarshal(env.Data, out))
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
}
