package web

import "embed"

// TemplatesFS embeds the HTML served at the site root.
//
//go:embed templates/*.html
var TemplatesFS embed.FS
