// Package propgen renders C# property declarations for DbTool entry classes.
package propgen

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// DataType is the declared type backing a generated property.
type DataType string

// Supported declared types.
const (
	TypeInt      DataType = "int"
	TypeString   DataType = "string"
	TypeTypeEnum DataType = "TypeEnum"
	TypeSexEnum  DataType = "SexEnum"
)

// defaultValues maps each declared type to its initializer literal.
// It is never written after package initialization.
var defaultValues = map[DataType]string{
	TypeInt:      "0",
	TypeString:   `""`,
	TypeTypeEnum: "TypeEnum.Use",
	TypeSexEnum:  "SexEnum.All",
}

// DefaultValue returns the initializer literal for t.
func DefaultValue(t DataType) (string, error) {
	v, ok := defaultValues[t]
	if !ok {
		return "", &UnknownTypeError{Type: t}
	}
	return v, nil
}

// DataTypes returns every type in the default value table, sorted by name.
func DataTypes() []DataType {
	types := make([]DataType, 0, len(defaultValues))
	for t := range defaultValues {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// UnknownTypeError is returned when a field's declared type has no default value.
type UnknownTypeError struct {
	Type  DataType
	Field string
}

func (e *UnknownTypeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("unknown data type %q", string(e.Type))
	}
	return fmt.Sprintf("field %q: unknown data type %q", e.Field, string(e.Type))
}

// Field describes one property to generate. A field is either typed, carrying
// its own declared type, or untyped, in which case it is an int.
// Build fields with Typed or Untyped; the zero Field is untyped.
type Field struct {
	Type  DataType
	Name  string
	typed bool
}

// Typed returns a field with an explicit declared type. An empty type is kept
// as declared and fails at generation time like any other unknown type.
func Typed(t DataType, name string) Field {
	return Field{Type: t, Name: name, typed: true}
}

// Untyped returns a field that defaults to int.
func Untyped(name string) Field {
	return Field{Name: name}
}

// IsTyped reports whether the field carries its own declared type.
func (f Field) IsTyped() bool {
	return f.typed
}

// fieldYAML is the serialized form of Field.
type fieldYAML struct {
	Name  string   `yaml:"name"`
	Type  DataType `yaml:"type,omitempty"`
	Typed bool     `yaml:"typed"`
}

// MarshalYAML implements yaml.Marshaler.
func (f Field) MarshalYAML() (any, error) {
	return fieldYAML{Name: f.Name, Type: f.Type, Typed: f.typed}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Field) UnmarshalYAML(value *yaml.Node) error {
	var raw fieldYAML
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*f = Field{Type: raw.Type, Name: raw.Name, typed: raw.Typed}
	return nil
}

// String returns the field in the --fields syntax.
func (f Field) String() string {
	if !f.IsTyped() {
		return f.Name
	}
	return f.Name + ":" + string(f.Type)
}

// Options selects the generation variant.
type Options struct {
	InferType  bool   `yaml:"infer_type"`            // honour typed fields; otherwise everything is int
	GroupLabel string `yaml:"group_label,omitempty"` // emitted as [Category(...)] when set
}

// Declaration is one resolved property, ready to render.
type Declaration struct {
	Type        DataType
	PublicName  string
	PrivateName string
	Default     string
	Order       int
	Group       string
}
