package portal

import "embed"

// TemplateFS holds the HTML templates compiled into the binary.
//
//go:embed web/templates
var TemplateFS embed.FS

// StaticFS holds the static assets compiled into the binary.
//
//go:embed web/static
var StaticFS embed.FS
