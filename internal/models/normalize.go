package models

import "strings"

// NormalizeName lowercases s and collapses all interior whitespace to
// single spaces, so "  Black  Beans " and "black beans" compare equal.
// Ingredient names, units and dietary tags are stored and compared in
// this form.
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
