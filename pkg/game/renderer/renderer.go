// Package renderer defines how narration reaches the screen: a renderer
// contract plus the inline markup shared by its implementations.
package renderer

import (
	"regexp"
	"strings"
)

// markupStyles maps markup function names to styles, e.g. DEVICE{Pixel 8}.
var markupStyles = map[string]TextStyle{
	"TITLE":   StyleTitle,
	"DEVICE":  StyleDevice,
	"VEHICLE": StyleVehicle,
	"ITEM":    StyleItem,
	"DENIED":  StyleDenied,
	"SUBTLE":  StyleSubtle,
}

var regexpStringFunctions = regexp.MustCompile(`([A-Z_]+){([^{}]*)}`)

// Literal braces in values are swapped for private-use runes until markup
// has been applied.
var (
	braceEscaper  = strings.NewReplacer("{", "\uE000", "}", "\uE001")
	braceRestorer = strings.NewReplacer("\uE000", "{", "\uE001", "}")
)

// Escape marks the braces in a value as literal text, so a value such as
// "notes{v2}" can be formatted into a message without breaking its markup.
func Escape(value string) string {
	return braceEscaper.Replace(value)
}

// ApplyMarkup replaces every FUNC{operand} in msg with style(operand).
// Unknown functions are left as written. Braces escaped with Escape come
// out as plain braces.
func ApplyMarkup(msg string, style func(text string, s TextStyle) string) string {
	styled := regexpStringFunctions.ReplaceAllStringFunc(msg, func(match string) string {
		parts := regexpStringFunctions.FindStringSubmatch(match)
		s, ok := markupStyles[parts[1]]
		if !ok {
			return match
		}
		return style(parts[2], s)
	})
	return braceRestorer.Replace(styled)
}

// StripMarkup removes markup, keeping the operands.
func StripMarkup(msg string) string {
	return ApplyMarkup(msg, func(text string, _ TextStyle) string { return text })
}
