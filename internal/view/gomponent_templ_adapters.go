package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// GomponentToTemplAdapter wraps a gomponents.Node so it satisfies templ.Component.
type GomponentToTemplAdapter struct {
	Node gomponents.Node
}

// Render writes the wrapped node; the context is not needed by gomponents.
func (a *GomponentToTemplAdapter) Render(_ context.Context, w io.Writer) error {
	return a.Node.Render(w)
}

// AdaptGomponentToTempl converts a gomponents.Node into a templ.Component.
func AdaptGomponentToTempl(node gomponents.Node) templ.Component {
	return &GomponentToTemplAdapter{Node: node}
}

// TemplToGomponentAdapter wraps a templ.Component so it can be placed inside a
// gomponents tree, such as a page body slot in a layout.
type TemplToGomponentAdapter struct {
	Ctx       context.Context
	Component templ.Component
}

// Render renders the component with the captured context, or
// context.Background() when none was captured.
func (a *TemplToGomponentAdapter) Render(w io.Writer) error {
	ctx := a.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return a.Component.Render(ctx, w)
}

// AdaptTemplToGomponent converts a templ.Component into a gomponents.Node.
func AdaptTemplToGomponent(component templ.Component) gomponents.Node {
	return &TemplToGomponentAdapter{Component: component}
}

// AdaptTemplToGomponentContext is AdaptTemplToGomponent with the request
// context carried through to the templ component.
func AdaptTemplToGomponentContext(ctx context.Context, component templ.Component) gomponents.Node {
	return &TemplToGomponentAdapter{Ctx: ctx, Component: component}
}
