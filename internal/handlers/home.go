package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kanbananza/landing/internal/i18n"
	"github.com/kanbananza/landing/internal/middleware"
	"github.com/kanbananza/landing/internal/routepath"
	"github.com/kanbananza/landing/internal/view"
	"github.com/kanbananza/landing/web/src/templates/pages"
)

// HomeHandler serves the landing page.
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// HomeGet renders the landing page. A supported ?lang= value is remembered
// for later visits; an unsupported one is reported with a flash and the
// visitor is sent back to the plain root path.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())
	res := i18n.ResolveTag(c.Request(), view.LanguagePreference(c))
	loc := i18n.New(res.Tag)

	if res.Rejected != "" {
		if err := view.SetFlashError(c, loc.T(i18n.KeyFlashLangUnsupported, res.Rejected)); err != nil {
			logger.Warn("failed to set flash", "error", err)
		}
		return c.Redirect(http.StatusSeeOther, routepath.Home)
	}

	if res.FromQuery {
		if err := view.SetLanguagePreference(c, loc.Lang()); err != nil {
			logger.Warn("failed to store language preference", "error", err)
		}
	}

	return renderPage(c, http.StatusOK, "", loc, pages.LandingFor(loc))
}

// HealthGet reports that the process is serving.
func HealthGet(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// NotFound renders the 404 page in the visitor's language.
func NotFound(c echo.Context) error {
	loc := localizer(c)
	return renderPage(c, http.StatusNotFound, loc.T(i18n.KeyNotFoundTitle), loc, pages.NotFound(loc))
}
