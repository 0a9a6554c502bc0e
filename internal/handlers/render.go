package handlers

import (
	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"

	"github.com/kanbananza/landing/internal/i18n"
	"github.com/kanbananza/landing/internal/view"
	"github.com/kanbananza/landing/web/src/templates/layouts"
)

// renderPage wraps content in the base layout with the visitor's flashes and
// renders it through Echo's renderer.
func renderPage(c echo.Context, status int, title string, loc i18n.Localizer, content cmp.Node) error {
	page := layouts.Base(c.Request().Context(), layouts.Page{
		Title:       title,
		Description: loc.T(i18n.KeyMetaDescription),
		Lang:        loc.Lang(),
		Flash:       view.GetFlashData(c),
		Content:     view.AdaptGomponentToTempl(content),
	})
	return c.Render(status, "", page)
}

// localizer resolves the visitor's language from the query, stored
// preference and Accept-Language.
func localizer(c echo.Context) i18n.Localizer {
	return i18n.New(i18n.ResolveTag(c.Request(), view.LanguagePreference(c)).Tag)
}
