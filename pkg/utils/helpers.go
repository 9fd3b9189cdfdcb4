package utils

import (
	"strconv"
	"strings"
)

// ParseValue turns a raw cell string into a typed value: int, then
// float, then the trimmed string itself.
func ParseValue(s string) interface{} {
	// Trim whitespace first
	s = strings.TrimSpace(s)

	// try int
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	// try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
