// Package dojoadmin embeds the dashboard frontend for production builds.
package dojoadmin

import "embed"

// In dev mode (DEV=true) templates and static files are read from disk instead.

//go:embed all:frontend/static
var StaticFS embed.FS

//go:embed all:frontend/templates
var TemplateFS embed.FS
