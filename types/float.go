package types

import "math"

// Fractional digits used when rendering floats as text
const (
	Float32Digits = 6
	Float64Digits = 16
)

// Float32Value represents a single-precision float payload
type Float32Value struct {
	Val float32
}

// Kind returns KindFloat32
func (f Float32Value) Kind() Kind {
	return KindFloat32
}

// Int32 truncates toward zero
func (f Float32Value) Int32() int32 {
	return truncInt32(float64(f.Val))
}

// Int64 truncates toward zero
func (f Float32Value) Int64() int64 {
	return truncInt64(float64(f.Val))
}

// Float32 returns the stored value
func (f Float32Value) Float32() float32 {
	return f.Val
}

// Float64 widens the stored value exactly
func (f Float32Value) Float64() float64 {
	return float64(f.Val)
}

// Bool returns false only for an exact zero (either sign)
func (f Float32Value) Bool() bool {
	return f.Val != 0
}

// String returns the fixed-point rendering with six fractional digits
func (f Float32Value) String() string {
	return formatFixed(float64(f.Val), Float32Digits)
}

// Native returns the value as a float32
func (f Float32Value) Native() any {
	return f.Val
}

func (Float32Value) sealed() {}

// Float64Value represents a double-precision float payload
type Float64Value struct {
	Val float64
}

// Kind returns KindFloat64
func (f Float64Value) Kind() Kind {
	return KindFloat64
}

// Int32 truncates toward zero
func (f Float64Value) Int32() int32 {
	return truncInt32(f.Val)
}

// Int64 truncates toward zero
func (f Float64Value) Int64() int64 {
	return truncInt64(f.Val)
}

// Float32 rounds to the nearest float32
func (f Float64Value) Float32() float32 {
	return float32(f.Val)
}

// Float64 returns the stored value
func (f Float64Value) Float64() float64 {
	return f.Val
}

// Bool returns false only for an exact zero (either sign)
func (f Float64Value) Bool() bool {
	return f.Val != 0
}

// String returns the fixed-point rendering with sixteen fractional digits
func (f Float64Value) String() string {
	return formatFixed(f.Val, Float64Digits)
}

// Native returns the value as a float64
func (f Float64Value) Native() any {
	return f.Val
}

func (Float64Value) sealed() {}

// truncInt32 drops the fractional part of f.
// NaN yields 0 and values outside the int32 range saturate.
func truncInt32(f float64) int32 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32+1:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int32(f)
}

// truncInt64 drops the fractional part of f.
// NaN yields 0 and values outside the int64 range saturate.
func truncInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		// float64(MaxInt64) rounds up to 2^63
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}
