package layouts

import (
	"context"

	"github.com/a-h/templ"
	cmp "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	g "maragu.dev/gomponents/html"

	"github.com/kanbananza/landing/internal/routepath"
	"github.com/kanbananza/landing/internal/view"
	"github.com/kanbananza/landing/web/src/templates/partials"
)

// Page describes a full document rendered by Base.
type Page struct {
	Title       string
	Description string
	Lang        string
	Flash       view.FlashData
	Content     templ.Component
}

// Base wraps page content in the HTML document shell. It adds no links of its
// own so the page body owns all navigation.
func Base(ctx context.Context, p Page) cmp.Node {
	lang := p.Lang
	if lang == "" {
		lang = "en"
	}

	body := []cmp.Node{g.Class("page")}
	if !p.Flash.Empty() {
		body = append(body, partials.Flash(p.Flash))
	}
	if p.Content != nil {
		body = append(body, view.AdaptTemplToGomponentContext(ctx, p.Content))
	}

	return components.HTML5(components.HTML5Props{
		Title:       CalculateTitle(p.Title),
		Description: p.Description,
		Language:    lang,
		Head: []cmp.Node{
			g.Link(g.Rel("stylesheet"), g.Href(routepath.Stylesheet)),
		},
		Body: body,
	})
}
