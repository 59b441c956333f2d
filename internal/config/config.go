package config

import (
	"fmt"
	"strings"

	"github.com/example/propgen/internal/propgen"
)

// Config represents one generation run: a preset and the overrides applied to it.
// Nil overrides leave the preset's own value in place.
type Config struct {
	Preset     string
	StartOrder *int
	GroupLabel *string
	InferType  *bool
	Fields     string // --fields list; replaces the preset's fields when set
	Verbose    bool
}

// Default returns a Config that generates the default preset unchanged.
func Default() *Config {
	return &Config{Preset: propgen.DefaultPreset}
}

// Resolve returns the preset to generate with all overrides applied.
func (c *Config) Resolve() (propgen.Preset, error) {
	name := c.Preset
	if name == "" {
		name = propgen.DefaultPreset
	}

	preset, ok := propgen.LookupPreset(name)
	if !ok {
		return propgen.Preset{}, fmt.Errorf("unknown preset %q (valid: %s)", name, presetNames())
	}

	if c.Fields != "" {
		fields, err := propgen.ParseFields(c.Fields)
		if err != nil {
			return propgen.Preset{}, fmt.Errorf("failed to parse fields: %w", err)
		}
		preset.Fields = fields
	}
	if c.StartOrder != nil {
		preset.StartOrder = *c.StartOrder
	}
	if c.GroupLabel != nil {
		preset.Options.GroupLabel = *c.GroupLabel
	}
	if c.InferType != nil {
		preset.Options.InferType = *c.InferType
	}

	return preset, nil
}

func presetNames() string {
	var names []string
	for _, p := range propgen.Presets() {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}
