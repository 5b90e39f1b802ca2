package server

import (
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/JoseMolina94/youtube-api-integration/internal/domain"
	apperrors "github.com/JoseMolina94/youtube-api-integration/internal/errors"
)

func (s *Server) handleSearch(c echo.Context) error {
	params := domain.SearchParams{
		Query:     c.QueryParam("q"),
		Type:      c.QueryParam("type"),
		PageToken: c.QueryParam("pageToken"),
		ChannelID: c.QueryParam("channelId"),
	}

	if params.Query == "" && params.ChannelID == "" {
		return apperrors.ValidationError(`query parameter "q" or "channelId" is required`)
	}

	result, err := s.catalog.Search(c.Request().Context(), params)
	if err != nil {
		return err
	}

	if err := c.JSON(200, result); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleChannel(c echo.Context) error {
	channelID := c.QueryParam("id")
	if channelID == "" {
		return apperrors.ValidationError(`query parameter "id" is required`)
	}

	channel, err := s.catalog.GetChannel(c.Request().Context(), channelID)
	if err != nil {
		if errors.Is(err, domain.ErrChannelNotFound) {
			return apperrors.NotFoundError("channel not found").WithField("channel_id", channelID)
		}
		return err
	}

	if err := c.JSON(200, channel); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleVideo(c echo.Context) error {
	videoID := c.QueryParam("id")
	if videoID == "" {
		return apperrors.ValidationError(`query parameter "id" is required`)
	}

	video, err := s.catalog.GetVideo(c.Request().Context(), videoID)
	if err != nil {
		if errors.Is(err, domain.ErrVideoNotFound) {
			return apperrors.NotFoundError("video not found").WithField("video_id", videoID)
		}
		return err
	}

	if err := c.JSON(200, video); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleRelated(c echo.Context) error {
	videoID := c.QueryParam("id")
	if videoID == "" {
		return apperrors.ValidationError(`query parameter "id" is required`)
	}

	result, err := s.catalog.GetRelated(c.Request().Context(), videoID, c.QueryParam("pageToken"))
	if err != nil {
		if errors.Is(err, domain.ErrVideoNotFound) {
			return apperrors.NotFoundError("video not found").WithField("video_id", videoID)
		}
		return err
	}

	if err := c.JSON(200, result); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
