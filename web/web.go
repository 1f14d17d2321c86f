// Package web embeds the page templates, static assets and default site content.
package web

import "embed"

//go:embed templates/*.html static content
var FS embed.FS

const (
	ContentFile = "content/portfolio.yaml"
	StaticDir   = "static"
)
