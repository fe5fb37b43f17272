package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "schoolhub/internal/delivery/context"
	domainerrors "schoolhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"k": "v"}, ""))

	body := decode(t, rec)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, http.StatusCreated, body["code"])
	assert.Equal(t, "Success", body["message"])
	assert.Equal(t, map[string]any{"k": "v"}, body["data"])
	assert.NotContains(t, body, "error")
	assert.Equal(t, map[string]any{"request_id": "req-1"}, body["meta"])
}

func TestError_HidesDetailsForAuthAndServerErrors(t *testing.T) {
	tests := []struct {
		status      int
		wantDetails bool
	}{
		{status: http.StatusBadRequest, wantDetails: true},
		{status: http.StatusUnauthorized, wantDetails: false},
		{status: http.StatusForbidden, wantDetails: false},
		{status: http.StatusInternalServerError, wantDetails: false},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Error(c, tt.status, "CODE", "", "why"))

			body := decode(t, rec)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, http.StatusText(tt.status), body["message"])
			errInfo, ok := body["error"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "CODE", errInfo["code"])
			_, hasDetails := errInfo["details"]
			assert.Equal(t, tt.wantDetails, hasDetails)
		})
	}
}

func TestHandleAppError(t *testing.T) {
	t.Run("wrapped app error", func(t *testing.T) {
		c, rec := newContext()

		err := domainerrors.ErrUserNotExist.WrapMessage("login rejected")
		require.NoError(t, HandleAppError(c, err))

		body := decode(t, rec)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "User does not exist", body["message"])
	})

	t.Run("details for client errors", func(t *testing.T) {
		c, rec := newContext()

		require.NoError(t, HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("email is required")))

		body := decode(t, rec)
		errInfo := body["error"].(map[string]any)
		assert.Equal(t, "email is required", errInfo["details"])
	})

	t.Run("plain error is passed on", func(t *testing.T) {
		c, rec := newContext()

		err := HandleAppError(c, assert.AnError)
		require.ErrorIs(t, err, assert.AnError)
		assert.Zero(t, rec.Body.Len())
	})
}
