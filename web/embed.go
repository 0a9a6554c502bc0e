package web

import "embed"

// FS contains the embedded static assets served under /static.
// Patterns are relative to the web directory.
//
//go:embed static
var FS embed.FS
