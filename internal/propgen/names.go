package propgen

import (
	"unicode"
	"unicode/utf8"
)

// reservedRenames maps private names that clash with C# keywords to the
// spelling used instead.
var reservedRenames = map[string]string{
	"class": "classNumber",
}

// PublicName returns raw with its first character upper-cased if it is lower case.
func PublicName(raw string) string {
	r, size := utf8.DecodeRuneInString(raw)
	if size == 0 || !unicode.IsLower(r) {
		return raw
	}
	return string(unicode.ToUpper(r)) + raw[size:]
}

// PrivateName returns the backing field name for a public property name.
func PrivateName(public string) string {
	name := lowerFirst(public)
	if renamed, ok := reservedRenames[name]; ok {
		return renamed
	}
	return name
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || (r == utf8.RuneError && size == 1) {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
