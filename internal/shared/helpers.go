// Package shared provides small string helpers used by the core and the
// adapters.
package shared

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/cast"
)

// Capitalize upper-cases the first rune of value and leaves the rest
// untouched.
func Capitalize(value string) string {
	if value == "" {
		return value
	}
	first, size := utf8.DecodeRuneInString(value)
	return string(unicode.ToUpper(first)) + value[size:]
}

// FieldString coerces a raw record value into a string. Missing and nil
// values become the empty string.
func FieldString(value any) string {
	return cast.ToString(value)
}

// SplitList splits a comma separated value, trimming each element and
// dropping empty ones.
func SplitList(value string) []string {
	var items []string
	for _, part := range strings.Split(value, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		items = append(items, trimmed)
	}
	return items
}
