package model

import (
	"strconv"
	"strings"
)

// ParseNumber converts a form value to a float64. Blank or unparseable
// input yields zero; arithmetic on partial entries must always produce a
// number, never an error.
func ParseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// IsNumber reports whether a form value parses as a decimal number.
func IsNumber(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

// FormatNumber renders a value the way form fields store it, with up to
// two decimal places and no trailing zeros.
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
