package partials

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/kanbananza/landing/internal/view"
)

// Flash renders the flash banner.
func Flash(data view.FlashData) cmp.Node {
	return g.Div(
		g.Class("flash"),
		cmp.Attr("role", "status"),
		cmp.Map(data.Success, func(msg string) cmp.Node {
			return g.P(g.Class("flash-success"), cmp.Text(msg))
		}),
		cmp.Map(data.Error, func(msg string) cmp.Node {
			return g.P(g.Class("flash-error"), cmp.Text(msg))
		}),
	)
}
