package server

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/samber/do/v2"

	"github.com/kanbananza/landing/internal/config"
	"github.com/kanbananza/landing/internal/handlers"
	"github.com/kanbananza/landing/internal/middleware"
	"github.com/kanbananza/landing/internal/rendering"
)

const contentSecurityPolicy = "default-src 'self'; img-src 'self' data:; style-src 'self'; frame-ancestors 'none'"

// Server holds the dependencies for the HTTP server.
type Server struct {
	E           *echo.Echo
	Cfg         *config.Config
	Logger      *slog.Logger
	renderer    rendering.Renderer
	homeHandler *handlers.HomeHandler
}

// New builds the Echo instance and its middleware chain from the services in
// the injector.
func New(i do.Injector) (*Server, error) {
	cfg, err := do.Invoke[*config.Config](i)
	if err != nil {
		return nil, fmt.Errorf("resolve config: %w", err)
	}
	logger, err := do.Invoke[*slog.Logger](i)
	if err != nil {
		return nil, fmt.Errorf("resolve logger: %w", err)
	}
	renderer, err := do.Invoke[rendering.Renderer](i)
	if err != nil {
		return nil, fmt.Errorf("resolve renderer: %w", err)
	}
	store, err := do.Invoke[sessions.Store](i)
	if err != nil {
		return nil, fmt.Errorf("resolve session store: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger)
	e.Use(middleware.AccessLog())
	e.Use(echomw.Recover())
	e.Use(echomw.SecureWithConfig(echomw.SecureConfig{
		XSSProtection:         echomw.DefaultSecureConfig.XSSProtection,
		ContentTypeNosniff:    echomw.DefaultSecureConfig.ContentTypeNosniff,
		XFrameOptions:         echomw.DefaultSecureConfig.XFrameOptions,
		ContentSecurityPolicy: contentSecurityPolicy,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))
	e.Use(middleware.RateLimiter(cfg.RateLimitRPS))
	e.Use(session.Middleware(store))

	setupErrorHandling(e)

	return &Server{
		E:           e,
		Cfg:         cfg,
		Logger:      logger,
		renderer:    renderer,
		homeHandler: handlers.NewHomeHandler(),
	}, nil
}

// Renderer is a getter for the server's renderer, useful for testing.
func (s *Server) Renderer() rendering.Renderer {
	return s.renderer
}
