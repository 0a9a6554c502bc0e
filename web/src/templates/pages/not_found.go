package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/kanbananza/landing/internal/i18n"
)

// NotFound is the body of the 404 page. It carries no links.
func NotFound(loc i18n.Localizer) cmp.Node {
	return g.Main(
		g.Class("container not-found"),
		g.H1(g.Class("hero-title"), cmp.Text(loc.T(i18n.KeyNotFoundTitle))),
		g.P(g.Class("hero-subtitle"), cmp.Text(loc.T(i18n.KeyNotFoundMessage))),
	)
}
