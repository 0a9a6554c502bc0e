// Package routepath holds the fixed paths the landing site serves or links to.
package routepath

const (
	// Home is the landing page.
	Home = "/"
	// Dashboard is served by the administrative application.
	Dashboard = "/dashboard"
	// Kiosk is served by the read-only display application.
	Kiosk = "/kiosk"
	// Health is the liveness probe.
	Health = "/health"
	// Static is the prefix for embedded assets.
	Static = "/static"
	// Stylesheet is the page stylesheet.
	Stylesheet = Static + "/css/landing.css"
)
