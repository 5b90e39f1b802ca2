package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/JoseMolina94/youtube-api-integration/internal/config"
	"github.com/JoseMolina94/youtube-api-integration/internal/domain"
	apperrors "github.com/JoseMolina94/youtube-api-integration/internal/errors"
)

// tokenValidator verifies a bearer token and returns its subject.
type tokenValidator interface {
	Validate(tokenString string) (uuid.UUID, error)
}

// postgresHealthChecker is a minimal interface for database health checks.
type postgresHealthChecker interface {
	Ping(ctx context.Context) error
}

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	app       domain.AppService
	catalog   domain.VideoCatalog
	tokens    tokenValidator
	db        postgresHealthChecker
	startTime time.Time
}

func NewServer(cfg *config.Config, app domain.AppService, catalog domain.VideoCatalog, tokens tokenValidator, db postgresHealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:      e,
		config:    cfg,
		app:       app,
		catalog:   catalog,
		tokens:    tokens,
		db:        db,
		startTime: time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
