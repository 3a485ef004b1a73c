package types

import (
	"math"
	"strconv"
	"strings"
)

// Numeric text is read the way strtol/strtod read it, minus locale and
// whitespace handling: scanning starts at index 0, the longest valid
// prefix is converted and everything after it is ignored.

// parseIntPrefix converts the leading [+-]digits of s.
// Overflow saturates to the int64 range.
func parseIntPrefix(s string) int64 {
	n := scanInt(s)
	if n == 0 {
		return 0
	}
	// ParseInt returns the saturated bound alongside ErrRange
	i, _ := strconv.ParseInt(s[:n], 10, 64)
	return i
}

// parseFloatPrefix converts the leading decimal number of s, rounding to
// bitSize (32 or 64) precision.
func parseFloatPrefix(s string, bitSize int) float64 {
	if f, ok := parseSpecial(s); ok {
		return f
	}
	n := scanFloat(s)
	if n == 0 {
		return 0
	}
	// On overflow ParseFloat returns ±Inf alongside ErrRange, as strtod does
	f, _ := strconv.ParseFloat(s[:n], bitSize)
	return f
}

// scanInt returns the length of the integer prefix of s, or 0 when s does
// not start with one. A bare sign is not a number.
func scanInt(s string) int {
	i := scanSign(s)
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return 0
	}
	return i
}

// scanFloat returns the length of the decimal float prefix of s:
// [+-] digits [. digits] [(e|E) [+-] digits], with at least one mantissa
// digit. A dangling exponent marker is left unconsumed.
func scanFloat(s string) int {
	i := scanSign(s)
	digits := 0

	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}

	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits+frac > 0 {
			i = j
			digits += frac
		}
	}

	if digits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expStart := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > expStart {
			i = j
		}
	}

	return i
}

// parseSpecial recognises a leading [+-]inf, [+-]infinity or [+-]nan,
// case-insensitively.
func parseSpecial(s string) (float64, bool) {
	i := scanSign(s)
	sign := 1
	if i == 1 && s[0] == '-' {
		sign = -1
	}
	rest := strings.ToLower(s[i:min(len(s), i+3)])
	switch rest {
	case "inf":
		return math.Inf(sign), true
	case "nan":
		return math.NaN(), true
	}
	return 0, false
}

func scanSign(s string) int {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		return 1
	}
	return 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
