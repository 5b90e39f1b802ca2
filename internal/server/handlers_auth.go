package server

import (
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/JoseMolina94/youtube-api-integration/internal/domain"
	apperrors "github.com/JoseMolina94/youtube-api-integration/internal/errors"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	user, err := s.app.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			return apperrors.DuplicateError("email already registered")
		case errors.Is(err, domain.ErrMissingName),
			errors.Is(err, domain.ErrInvalidEmail),
			errors.Is(err, domain.ErrPasswordTooShort):
			return apperrors.ValidationError(err.Error())
		default:
			return apperrors.InternalError("failed to register user", err)
		}
	}

	if err := c.JSON(201, map[string]any{
		"message": "user registered",
		"user":    user,
	}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	token, user, err := s.app.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// One generic message for unknown email and wrong password.
			return apperrors.ValidationError("invalid credentials")
		}
		return apperrors.InternalError("failed to log in", err)
	}

	if err := c.JSON(200, map[string]any{
		"token": token,
		"user":  user,
	}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleMe(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := s.app.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return apperrors.NotFoundError("user not found").WithField("user_id", userID.String())
		}
		return apperrors.InternalError("failed to load user", err).WithField("user_id", userID.String())
	}

	if err := c.JSON(200, map[string]any{"user": user}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
