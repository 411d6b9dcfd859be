// Package util provides some basic parsing, formatting and numeric helpers.
package util

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseValue parses str as an unsigned integer that must fit in width bits.
// Decimal, 0b, 0o and 0x forms are accepted, as are underscore separators.
func ParseValue(str string, width uint) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(str), 0, int(width))
}

// FormatBinary returns value as 0b followed by exactly width binary digits.
func FormatBinary(value uint64, width uint) string {
	return fmt.Sprintf("0b%0*b", int(width), value)
}

// FormatHex returns value as 0x followed by width / 4 hex digits.
func FormatHex(value uint64, width uint) string {
	return fmt.Sprintf("0x%0*X", int(width/4), value)
}

// Min returns the smallest of a and b.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the largest of a and b.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Clamp returns val if val is within min and max, min if val < min, or max if val > max.
// This clamps val to the range defined by min and max.
func Clamp(min, max, val int) int {
	return Min(max, Max(min, val))
}
