package types

import (
	"math"
	"strconv"
)

// formatFixed renders f in fixed-point notation with prec fractional
// digits, '.' as the decimal separator and no digit grouping.
// Non-finite values render as nan, inf and -inf so they parse back.
func formatFixed(f float64, prec int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', prec, 64)
}
