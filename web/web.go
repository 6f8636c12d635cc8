// Copyright (c) 2025 Shreyashh2909.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package web holds the embedded landing page.
package web

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var files embed.FS

var index = template.Must(template.ParseFS(files, "templates/index.html"))

// Page is the data the landing page template renders
type Page struct {
	Title   string
	Model   string
	History bool
}

// RenderIndex writes the landing page
func RenderIndex(w io.Writer, p Page) error {
	return index.Execute(w, p)
}
