package propgen

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/template"

	propertytmpl "github.com/example/propgen/internal/templates/property"
)

// Generator writes property declarations using the embedded template.
type Generator struct {
	tmpl   *template.Template
	logger *slog.Logger
}

// NewGenerator creates a new Generator. A nil logger discards log output.
func NewGenerator(logger *slog.Logger) (*Generator, error) {
	tmpl, err := propertytmpl.ParseDeclarationTemplate()
	if err != nil {
		return nil, fmt.Errorf("failed to parse declaration template: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{tmpl: tmpl, logger: logger}, nil
}

// Generate writes one declaration block per field to w, numbering them from start.
// Blocks written before a failing field are left in w.
func (g *Generator) Generate(w io.Writer, fields []Field, start int, opts Options) error {
	decls, resolveErr := Resolve(fields, start, opts)
	for _, decl := range decls {
		var buf bytes.Buffer
		if err := g.tmpl.Execute(&buf, decl); err != nil {
			return fmt.Errorf("failed to render %s: %w", decl.PublicName, err)
		}
		if _, err := w.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("failed to write %s: %w", decl.PublicName, err)
		}

		g.logger.Debug("rendered declaration",
			"field", decl.PublicName,
			"type", string(decl.Type),
			"order", decl.Order)
	}
	return resolveErr
}

// Render returns the declaration blocks for fields as a string.
func (g *Generator) Render(fields []Field, start int, opts Options) (string, error) {
	var sb strings.Builder
	err := g.Generate(&sb, fields, start, opts)
	return sb.String(), err
}

// GeneratePreset writes the declarations for p.
func (g *Generator) GeneratePreset(w io.Writer, p Preset) error {
	g.logger.Info("generating preset",
		"preset", p.Name,
		"fields", len(p.Fields),
		"start", p.StartOrder)
	return g.Generate(w, p.Fields, p.StartOrder, p.Options)
}
