package middleware

import (
	"log/slog"
	"strings"

	"schoolhub/internal/delivery/api/response"
	deliverycontext "schoolhub/internal/delivery/context"
	domainerrors "schoolhub/internal/domain/errors"
	"schoolhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	userIDKey = "userID"
	claimsKey = "claims"

	bearerPrefix = "Bearer "
)

// AuthMiddleware verifies bearer tokens and exposes the caller identity to handlers.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate rejects the request with 401 unless it carries a valid bearer token.
// On success the user ID is stored on the echo context and on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

		tokenString, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized)
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			logger.DebugContext(ctx, "Rejected bearer token", slog.Any("error", err))

			return response.HandleAppError(c, domainerrors.ErrUnauthorized)
		}

		c.Set(userIDKey, claims.ID)
		c.Set(claimsKey, claims)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithUserID(ctx, claims.ID)))

		return next(c)
	}
}

// GetUserID returns the caller set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(userIDKey).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetClaims returns the verified token claims set by Authenticate.
func GetClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*service.Claims)

	return claims, ok && claims != nil
}

func bearerToken(header string) (string, bool) {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}
