package ui

import (
	"embed"
	"html/template"
)

//go:embed views/*.tmpl
var viewFS embed.FS

// Templates parses the embedded view set. Embedding keeps the binary and
// the tests independent of the working directory.
func Templates() *template.Template {
	return template.Must(template.ParseFS(viewFS, "views/*.tmpl"))
}
