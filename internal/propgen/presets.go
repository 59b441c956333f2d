package propgen

import "fmt"

// Preset is a named field list together with how to generate it.
type Preset struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	StartOrder  int     `yaml:"start_order"`
	Options     Options `yaml:"options"`
	Fields      []Field `yaml:"fields"`
}

// DefaultPreset is the preset generated when none is named.
const DefaultPreset = "item"

var presets = []Preset{
	{
		Name:        "item",
		Description: "ItemDbEntry properties",
		StartOrder:  0,
		Options:     Options{InferType: true},
		Fields: []Field{
			Untyped("number"), Typed(TypeString, "name"), Typed(TypeString, "shortName"),
			Untyped("rank"), Typed(TypeTypeEnum, "type"),
			Untyped("price"), Untyped("sell"), Untyped("maxAmount"), Untyped("class"),
			Typed(TypeSexEnum, "sex"), Untyped("level"), Untyped("look"), Untyped("lookColor"),
			Untyped("icon"), Untyped("iconColor"), Untyped("sound"), Untyped("durability"),
			Untyped("might"), Untyped("will"), Untyped("grace"), Untyped("armor"), Untyped("hit"),
			Untyped("damage"), Untyped("vita"), Untyped("mana"), Untyped("protection"),
			Untyped("healing"), Untyped("minDamage"), Untyped("maxDamage"),
		},
	},
	{
		Name:        "drops",
		Description: "MobDbEntry drop slots",
		StartOrder:  9,
		Options:     Options{GroupLabel: "Drops"},
		Fields:      concat(numbered("drop", 8), numbered("dropRate", 8), numbered("dropCount", 8)),
	},
	{
		Name:        "start",
		Description: "starting position properties",
		StartOrder:  1,
		Fields: []Field{
			Untyped("StartMap"), Untyped("StartX"), Untyped("StartY"), Untyped("Id"),
		},
	},
}

// Presets returns all built-in presets. The returned slice is a copy.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	for i, p := range presets {
		out[i] = p.clone()
	}
	return out
}

// LookupPreset returns the built-in preset with the given name.
func LookupPreset(name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p.clone(), true
		}
	}
	return Preset{}, false
}

func (p Preset) clone() Preset {
	p.Fields = append([]Field(nil), p.Fields...)
	return p
}

// numbered returns untyped fields prefix1..prefixN.
func numbered(prefix string, n int) []Field {
	fields := make([]Field, n)
	for i := range fields {
		fields[i] = Untyped(fmt.Sprintf("%s%d", prefix, i+1))
	}
	return fields
}

func concat(lists ...[]Field) []Field {
	var out []Field
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
