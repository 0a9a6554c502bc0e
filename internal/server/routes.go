package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kanbananza/landing/internal/handlers"
	"github.com/kanbananza/landing/internal/routepath"
	"github.com/kanbananza/landing/web"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	s.E.Match([]string{http.MethodGet, http.MethodHead}, routepath.Home, s.homeHandler.HomeGet)
	s.E.GET(routepath.Health, handlers.HealthGet)
	s.E.StaticFS(routepath.Static, echo.MustSubFS(web.FS, "static"))
}
