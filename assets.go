// Package minddashboard provides embedded assets for production builds.
package minddashboard

import "embed"

// TemplateFS holds the page templates. In dev mode they are read from disk instead.
//
//go:embed all:frontend/templates
var TemplateFS embed.FS
