package server

import (
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/JoseMolina94/youtube-api-integration/internal/domain"
	apperrors "github.com/JoseMolina94/youtube-api-integration/internal/errors"
)

// listResponse keys the response body by list name, e.g. {"favorites": [...]}.
func listResponse(c echo.Context, list domain.List, items []string) error {
	if items == nil {
		items = []string{}
	}
	if err := c.JSON(200, map[string][]string{string(list): items}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func mapListError(err error, userID fmt.Stringer) error {
	if errors.Is(err, domain.ErrUserNotFound) {
		return apperrors.NotFoundError("user not found").WithField("user_id", userID.String())
	}
	return apperrors.InternalError("list operation failed", err).WithField("user_id", userID.String())
}

func (s *Server) handleListGet(list domain.List) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}

		items, err := s.app.ListItems(c.Request().Context(), userID, list)
		if err != nil {
			return mapListError(err, userID)
		}
		return listResponse(c, list, items)
	}
}

func (s *Server) handleListAdd(list domain.List) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}

		itemID := c.Param("id")
		if itemID == "" {
			return apperrors.ValidationError("item id is required")
		}

		items, err := s.app.AddListItem(c.Request().Context(), userID, list, itemID)
		if err != nil {
			return mapListError(err, userID)
		}
		return listResponse(c, list, items)
	}
}

func (s *Server) handleListRemove(list domain.List) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}

		itemID := c.Param("id")
		if itemID == "" {
			return apperrors.ValidationError("item id is required")
		}

		items, err := s.app.RemoveListItem(c.Request().Context(), userID, list, itemID)
		if err != nil {
			return mapListError(err, userID)
		}
		return listResponse(c, list, items)
	}
}
