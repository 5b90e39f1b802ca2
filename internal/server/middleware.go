package server

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "github.com/JoseMolina94/youtube-api-integration/internal/errors"
)

const bearerPrefix = "Bearer "

// requireAuth extracts and validates the bearer token. A missing token is 401;
// a token that fails validation (malformed, bad signature, expired) is 403.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			return apperrors.UnauthorizedError("bearer token required")
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		if token == "" {
			return apperrors.UnauthorizedError("bearer token required")
		}

		userID, err := s.tokens.Validate(token)
		if err != nil {
			return apperrors.ForbiddenError("invalid or expired token")
		}

		c.Set("userID", userID)
		return next(c)
	}
}

// currentUserID reads the user id the auth middleware stored in the context.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return uuid.Nil, apperrors.InternalError("invalid user ID in context", nil)
	}
	return userID, nil
}
