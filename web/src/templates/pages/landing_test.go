package pages_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/text/language"

	"github.com/kanbananza/landing/internal/i18n"
	"github.com/kanbananza/landing/web/src/templates/pages"
)

func render(t *testing.T, loc i18n.Localizer) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, pages.LandingFor(loc).Render(&buf))
	return buf.String()
}

func parse(t *testing.T, doc string) *html.Node {
	t.Helper()
	root, err := html.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	return root
}

// findAll collects the elements for which match returns true, in document order.
func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func tag(name string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == name }
}

func hasClass(name string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		for _, f := range strings.Fields(attr(n, "class")) {
			if f == name {
				return true
			}
		}
		return false
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func TestLandingHeading(t *testing.T) {
	root := parse(t, render(t, i18n.Default()))

	headings := findAll(root, tag("h1"))
	require.Len(t, headings, 1)
	assert.Equal(t, "Welcome to Kanbananza", text(headings[0]))

	accents := findAll(headings[0], hasClass("accent"))
	require.Len(t, accents, 1)
	assert.Equal(t, "span", accents[0].Data)
	assert.Equal(t, "Kanbananza", text(accents[0]))
}

func TestLandingSubtitle(t *testing.T) {
	root := parse(t, render(t, i18n.Default()))

	subtitles := findAll(root, hasClass("hero-subtitle"))
	require.Len(t, subtitles, 1)
	assert.Equal(t, "The ultimate kanban board management platform for teams and organizations.", text(subtitles[0]))
}

func TestLandingNavigation(t *testing.T) {
	root := parse(t, render(t, i18n.Default()))

	links := findAll(root, tag("a"))
	require.Len(t, links, 2, "the page has exactly two navigation controls")

	assert.Equal(t, "/dashboard", attr(links[0], "href"))
	assert.Equal(t, "Go to Dashboard", text(links[0]))
	assert.True(t, hasClass("btn-primary")(links[0]))

	assert.Equal(t, "/kiosk", attr(links[1], "href"))
	assert.Equal(t, "View Kiosk", text(links[1]))
	assert.True(t, hasClass("btn-outline")(links[1]))

	assert.Empty(t, findAll(root, tag("button")))
	assert.Empty(t, findAll(root, tag("form")))
	assert.Empty(t, findAll(root, tag("script")))
}

func TestLandingFeatures(t *testing.T) {
	root := parse(t, render(t, i18n.Default()))

	grids := findAll(root, hasClass("features"))
	require.Len(t, grids, 1)

	cards := findAll(grids[0], hasClass("feature"))
	require.Len(t, cards, 3)

	want := []struct{ title, description string }{
		{"Landing Page", "Public-facing website for kanbananza.com"},
		{"Dashboard", "Admin interface for managing kanban boards"},
		{"Kiosk", "Public display for showing kanban boards"},
	}
	for i, card := range cards {
		titles := findAll(card, tag("h3"))
		require.Len(t, titles, 1)
		assert.Equal(t, want[i].title, text(titles[0]))

		descriptions := findAll(card, tag("p"))
		require.Len(t, descriptions, 1)
		assert.Equal(t, want[i].description, text(descriptions[0]))

		assert.Empty(t, findAll(card, tag("a")), "feature cards are not interactive")
	}
}

func TestLandingIsIdempotent(t *testing.T) {
	assert.Equal(t, render(t, i18n.Default()), render(t, i18n.Default()))

	var a, b bytes.Buffer
	require.NoError(t, pages.Landing().Render(&a))
	require.NoError(t, pages.Landing().Render(&b))
	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, render(t, i18n.Default()), a.String())
}

func TestLandingDoesNotLog(t *testing.T) {
	var logs bytes.Buffer
	original := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(original)

	render(t, i18n.Default())

	assert.Empty(t, logs.String())
}

func TestLandingLocalized(t *testing.T) {
	root := parse(t, render(t, i18n.New(language.BrazilianPortuguese)))

	headings := findAll(root, tag("h1"))
	require.Len(t, headings, 1)
	assert.Equal(t, "Bem-vindo ao Kanbananza", text(headings[0]))

	links := findAll(root, tag("a"))
	require.Len(t, links, 2)
	assert.Equal(t, "/dashboard", attr(links[0], "href"))
	assert.Equal(t, "Ir para o Painel", text(links[0]))
	assert.Equal(t, "/kiosk", attr(links[1], "href"))

	assert.Len(t, findAll(root, hasClass("feature")), 3)
}

func TestNotFoundHasNoLinks(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, pages.NotFound(i18n.Default()).Render(&buf))

	root := parse(t, buf.String())
	assert.Empty(t, findAll(root, tag("a")))
	assert.Contains(t, buf.String(), "Page not found")
}
