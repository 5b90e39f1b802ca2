package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JoseMolina94/youtube-api-integration/internal/domain"
)

func (s *Server) registerRoutes() {
	// Observability endpoints (no auth required)
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/version", s.handleVersion)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth routes
	s.echo.POST("/auth/register", s.handleRegister)
	s.echo.POST("/auth/login", s.handleLogin)
	s.echo.GET("/auth/me", s.handleMe, s.requireAuth)

	// Upstream catalog proxy (no auth required)
	s.echo.GET("/youtube/search", s.handleSearch)
	s.echo.GET("/youtube/channel", s.handleChannel)
	s.echo.GET("/youtube/video", s.handleVideo)
	s.echo.GET("/youtube/related", s.handleRelated)

	// Per-user membership lists (bearer auth)
	s.registerListRoutes("/user/favorites", domain.ListFavorites)
	s.registerListRoutes("/user/see-later", domain.ListSeeLater)
}

func (s *Server) registerListRoutes(prefix string, list domain.List) {
	s.echo.GET(prefix, s.handleListGet(list), s.requireAuth)
	s.echo.POST(prefix+"/:id", s.handleListAdd(list), s.requireAuth)
	s.echo.DELETE(prefix+"/:id", s.handleListRemove(list), s.requireAuth)
}
