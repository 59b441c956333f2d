package propgen

import (
	"fmt"
	"strings"
)

// ParseFields parses the --fields list into a slice of Field.
// Format: "number,name:string,type:TypeEnum". A bare name is untyped.
// Types are not checked here; unknown ones fail when generated.
func ParseFields(fieldsStr string) ([]Field, error) {
	if fieldsStr == "" {
		return nil, nil
	}

	var fields []Field
	for _, part := range strings.Split(fieldsStr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		field, err := parseField(part)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	return fields, nil
}

// parseField parses "name" or "name:type".
func parseField(spec string) (Field, error) {
	name, typ, typed := strings.Cut(spec, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return Field{}, fmt.Errorf("invalid field spec %q: empty field name", spec)
	}
	if !typed {
		return Untyped(name), nil
	}

	typ = strings.TrimSpace(typ)
	if typ == "" {
		return Field{}, fmt.Errorf("invalid field spec %q: expected 'name:type'", spec)
	}
	return Typed(DataType(typ), name), nil
}
