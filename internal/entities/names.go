package entities

import (
	"strings"

	"golang.org/x/text/cases"
)

// NameKey returns the case-folded form of a character or item name. Two
// names with the same key are the same name.
func NameKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
