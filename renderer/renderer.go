package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templatesFS embed.FS

// templates is the templates folder of templatesFS.
var templates, _ = fs.Sub(templatesFS, "templates")

// funcs are the helpers available in every template.
var funcs = template.FuncMap{
	"cell": cell,
}

// RenderCollection renders the collection table to a markdown string.
func RenderCollection(c *Collection) string {
	partials := map[string]string{
		"collection_title": "collection_title.md",
		"collection_table": "collection_table.md",
	}
	return renderTemplate("collection", "collection.md", partials, c)
}

// RenderEntry renders the details and the value history of one card.
func RenderEntry(e *Entry) string {
	partials := map[string]string{
		"entry_title":   "entry_title.md",
		"entry_history": "entry_history.md",
	}
	if len(e.History) == 0 {
		partials["entry_history"] = "entry_history_empty.md"
	}
	return renderTemplate("entry", "entry.md", partials, e)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// cell makes a user provided text safe to use in a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, `|`, `\|`)
	return strings.Join(strings.Fields(s), " ")
}
