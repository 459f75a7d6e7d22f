// Package ui holds the dashboard page served at "/".
package ui

import (
	"embed"
	"html/template"
)

//go:embed views/*.tmpl
var views embed.FS

// Templates parses the embedded views. It panics on a broken template,
// which can only happen at build time.
func Templates() *template.Template {
	return template.Must(template.ParseFS(views, "views/*.tmpl"))
}
