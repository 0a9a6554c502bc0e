package view_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/kanbananza/landing/internal/view"
)

func TestAdaptGomponentToTempl(t *testing.T) {
	component := view.AdaptGomponentToTempl(h.P(g.Text("hello")))

	var buf bytes.Buffer
	require.NoError(t, component.Render(context.Background(), &buf))
	assert.Equal(t, "<p>hello</p>", buf.String())
}

func TestAdaptTemplToGomponent(t *testing.T) {
	component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<em>inner</em>")
		return err
	})

	var buf bytes.Buffer
	require.NoError(t, h.Div(view.AdaptTemplToGomponent(component)).Render(&buf))
	assert.Equal(t, "<div><em>inner</em></div>", buf.String())
}
