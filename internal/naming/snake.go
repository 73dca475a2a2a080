// Package naming converts declared field names to wire key forms.
package naming

import (
	"strings"
	"unicode"
)

// SnakeCase converts a camelCase or PascalCase name to snake_case.
//
// An upper-case rune starts a new word when it follows a non-upper-case rune,
// or when it is the last rune of an upper-case run that is followed by a
// lower-case rune ("myURLProperty" -> "my_url_property"). Existing
// underscores and digits are kept as-is.
func SnakeCase(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(name)

	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range runes {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}
		if i > 0 && runes[i-1] != '_' {
			prevUpper := unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if !prevUpper || nextLower {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
