package rendering

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// ErrUnsupportedComponent is returned for values that are neither a
// templ.Component nor a gomponents-style node.
var ErrUnsupportedComponent = errors.New("unsupported component type")

// Renderer renders templ or gomponents components either to bytes (static
// export) or as Echo's page renderer.
type Renderer interface {
	echo.Renderer

	// RenderComponent renders a component to a slice of bytes.
	RenderComponent(ctx context.Context, component interface{}) ([]byte, error)
}

// UniversalRenderer handles both templ components and gomponents nodes.
type UniversalRenderer struct{}

// NewUniversalRenderer creates a new UniversalRenderer instance.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

// gomponentNode matches gomponents.Node without importing it.
type gomponentNode interface {
	Render(w io.Writer) error
}

func (tr *UniversalRenderer) render(ctx context.Context, component interface{}, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case gomponentNode:
		return c.Render(w)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedComponent, component)
	}
}

// RenderComponent implements the Renderer interface.
func (tr *UniversalRenderer) RenderComponent(ctx context.Context, component interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := tr.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("render component: %w", err)
	}
	return buf.Bytes(), nil
}

// Render implements echo.Renderer. The component is passed as data; name is
// ignored. Echo sets the HTML content type when it writes the buffered body.
func (tr *UniversalRenderer) Render(w io.Writer, _ string, data interface{}, c echo.Context) error {
	ctx := context.Background()
	if c != nil && c.Request() != nil {
		ctx = c.Request().Context()
	}
	return tr.render(ctx, data, w)
}
