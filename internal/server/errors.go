package server

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/kanbananza/landing/internal/handlers"
	"github.com/kanbananza/landing/internal/middleware"
	"github.com/kanbananza/landing/internal/reporting"
)

// setupErrorHandling installs the HTTP error handler. Not-found responses get
// the rendered 404 page, other HTTP errors their status text, and anything
// else is logged with a stack trace, reported and answered with a 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		logger := middleware.FromContext(c.Request().Context())

		var he *echo.HTTPError
		if errors.As(err, &he) {
			if he.Code == http.StatusNotFound && c.Echo().Renderer != nil {
				renderErr := handlers.NotFound(c)
				if renderErr == nil {
					return
				}
				logger.Error("failed to render not found page", "error", renderErr)
			}
			respond(c, he.Code, httpErrorMessage(he))
			return
		}

		logger.Error("Internal Server Error (Unhandled)",
			"error", err,
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"stack_trace", string(debug.Stack()),
		)
		reporting.CaptureError(c.Request().Context(), err)
		respond(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

func httpErrorMessage(he *echo.HTTPError) string {
	if msg, ok := he.Message.(string); ok && msg != "" {
		return msg
	}
	return http.StatusText(he.Code)
}

func respond(c echo.Context, status int, message string) {
	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.String(status, message)
	}
	if err != nil {
		middleware.FromContext(c.Request().Context()).Error("failed to write error response", "error", err)
	}
}
