package views

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"brl":  FormatBRL,
	"area": FormatArea,
	"add":  func(a, b int) int { return a + b },
}

// Templates parses the embedded pages. Page names are the file names (home.html, ...).
func Templates() (*template.Template, error) {
	return template.New("site").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}
