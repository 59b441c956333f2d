package propgen

import "errors"

// resolveType returns the declared type of f under opts.
func resolveType(f Field, opts Options) DataType {
	if opts.InferType && f.IsTyped() {
		return f.Type
	}
	return TypeInt
}

// resolveField resolves a single field at the given order.
func resolveField(f Field, order int, opts Options) (Declaration, error) {
	dataType := resolveType(f, opts)
	public := PublicName(f.Name)
	private := PrivateName(public)

	def, err := DefaultValue(dataType)
	if err != nil {
		var ute *UnknownTypeError
		if errors.As(err, &ute) {
			ute.Field = f.Name
		}
		return Declaration{}, err
	}

	return Declaration{
		Type:        dataType,
		PublicName:  public,
		PrivateName: private,
		Default:     def,
		Order:       order,
		Group:       opts.GroupLabel,
	}, nil
}

// Resolve resolves fields in order, numbering them from start.
// It stops at the first field whose type has no default value.
func Resolve(fields []Field, start int, opts Options) ([]Declaration, error) {
	decls := make([]Declaration, 0, len(fields))
	order := start
	for _, f := range fields {
		decl, err := resolveField(f, order, opts)
		if err != nil {
			return decls, err
		}
		decls = append(decls, decl)
		order++
	}
	return decls, nil
}
