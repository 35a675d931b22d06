package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

// templates holds the markdown templates of the reports. A template named
// after another one plus a "_suffix" is one of its partials.
//
//go:embed *.md
var templates embed.FS

// RenderComposition renders the composition report to a markdown string.
func RenderComposition(c *Composition) string {
	partials := map[string]string{
		"composition_title": "composition_title.md",
		"composition_table": "composition_table.md",
	}
	return renderTemplate("composition", "composition.md", partials, c)
}

// RenderComparison renders the rebalancing report to a markdown string.
func RenderComparison(c *Comparison) string {
	partials := map[string]string{
		"comparison_title": "comparison_title.md",
		"comparison_table": "comparison_table.md",
		"comparison_drift": "comparison_drift.md",
	}
	return renderTemplate("comparison", "comparison.md", partials, c)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
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
