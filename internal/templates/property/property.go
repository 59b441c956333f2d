// Package property provides the template used to render C# property declarations.
package property

import (
	"embed"
	"strconv"
	"text/template"
)

//go:embed *.tmpl
var propertyTemplates embed.FS

// DeclarationTemplateName is the name of the per-field declaration template.
const DeclarationTemplateName = "declaration.cs.tmpl"

// GetDeclarationTemplate returns the content of the declaration template.
func GetDeclarationTemplate() (string, error) {
	content, err := propertyTemplates.ReadFile(DeclarationTemplateName)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// ParseDeclarationTemplate parses the declaration template with TemplateFuncs.
func ParseDeclarationTemplate() (*template.Template, error) {
	content, err := GetDeclarationTemplate()
	if err != nil {
		return nil, err
	}
	return template.New(DeclarationTemplateName).Funcs(TemplateFuncs()).Parse(content)
}

// TemplateFuncs returns the template function map for property templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"quote": strconv.Quote,
	}
}
