package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/kanbananza/landing/internal/i18n"
	"github.com/kanbananza/landing/internal/routepath"
)

// Variant selects the button style of an Action.
type Variant string

const (
	VariantPrimary Variant = "primary"
	VariantOutline Variant = "outline"
)

// Action is a call-to-action link rendered as a button.
type Action struct {
	LabelKey string
	Href     string
	Variant  Variant
}

// Feature is one card of the feature summary grid.
type Feature struct {
	TitleKey       string
	DescriptionKey string
}

// Actions returns the landing page calls to action, primary first.
func Actions() []Action {
	return []Action{
		{LabelKey: i18n.KeyCTADashboard, Href: routepath.Dashboard, Variant: VariantPrimary},
		{LabelKey: i18n.KeyCTAKiosk, Href: routepath.Kiosk, Variant: VariantOutline},
	}
}

// Features returns the feature summary cards in display order.
func Features() []Feature {
	return []Feature{
		{TitleKey: i18n.KeyFeatureLandingTitle, DescriptionKey: i18n.KeyFeatureLandingDescription},
		{TitleKey: i18n.KeyFeatureDashTitle, DescriptionKey: i18n.KeyFeatureDashDescription},
		{TitleKey: i18n.KeyFeatureKioskTitle, DescriptionKey: i18n.KeyFeatureKioskDescription},
	}
}

// Landing renders the landing page content in the default language.
func Landing() cmp.Node {
	return LandingFor(i18n.Default())
}

// LandingFor renders the landing page content with copy from loc.
func LandingFor(loc i18n.Localizer) cmp.Node {
	return g.Main(
		g.Class("container landing"),
		g.Div(
			g.Class("hero"),
			g.H1(
				g.Class("hero-title"),
				cmp.Text(loc.T(i18n.KeyHeadingPrefix)+" "),
				g.Span(g.Class("accent"), cmp.Text(i18n.BrandName)),
			),
			g.P(g.Class("hero-subtitle"), cmp.Text(loc.T(i18n.KeySubtitle))),
			g.Div(
				g.Class("actions"),
				cmp.Map(Actions(), func(a Action) cmp.Node {
					return actionButton(loc, a)
				}),
			),
		),
		g.Div(
			g.Class("features"),
			cmp.Map(Features(), func(f Feature) cmp.Node {
				return g.Div(
					g.Class("feature"),
					g.H3(g.Class("feature-title"), cmp.Text(loc.T(f.TitleKey))),
					g.P(g.Class("feature-description"), cmp.Text(loc.T(f.DescriptionKey))),
				)
			}),
		),
	)
}

func actionButton(loc i18n.Localizer, a Action) cmp.Node {
	return g.A(
		g.Href(a.Href),
		g.Class("btn btn-"+string(a.Variant)+" btn-lg"),
		cmp.Text(loc.T(a.LabelKey)),
	)
}
