// Package types implements Variant, a value slot holding exactly one of
// int32, int64, float32, float64, string or bool and converting between
// them on read.
//
// Conversions never fail: malformed numeric text, NaN and out-of-range
// values all degrade to a documented default. Callers that need
// validation must check their input first.
//
// A Variant is a plain value like an int. It is not safe for concurrent
// mutation; callers sharing one across goroutines must synchronise.
package types

import (
	"io"
	"math"
)

// Variant holds one scalar of any supported kind.
// The zero value holds the 64-bit integer 0.
type Variant struct {
	val Scalar
}

// New returns the default Variant: the 64-bit integer 0
func New() Variant {
	return Variant{val: Int64Value{}}
}

// NewInt32 creates a Variant from a 32-bit integer.
// Construction widens the value and stores it as KindInt64; use SetInt32
// to hold a genuine KindInt32.
func NewInt32(val int32) Variant {
	return Variant{val: Int64Value{Val: int64(val)}}
}

// NewInt creates a Variant from a platform int, stored as KindInt64
func NewInt(val int) Variant {
	return Variant{val: Int64Value{Val: int64(val)}}
}

// NewInt64 creates a KindInt64 Variant
func NewInt64(val int64) Variant {
	return Variant{val: Int64Value{Val: val}}
}

// NewFloat32 creates a KindFloat32 Variant
func NewFloat32(val float32) Variant {
	return Variant{val: Float32Value{Val: val}}
}

// NewFloat64 creates a KindFloat64 Variant
func NewFloat64(val float64) Variant {
	return Variant{val: Float64Value{Val: val}}
}

// NewString creates a KindString Variant
func NewString(val string) Variant {
	return Variant{val: StrValue{val: val}}
}

// NewBool creates a KindBool Variant
func NewBool(val bool) Variant {
	return Variant{val: BoolValue{Val: val}}
}

// FromScalar wraps an existing payload. A nil payload yields the default
// Variant.
func FromScalar(s Scalar) Variant {
	return Variant{val: s}
}

// Of creates a Variant from a native Go value.
// Signed and unsigned integers narrower than 64 bits are widened to
// KindInt64, matching the New* constructors; a uint64 beyond the int64
// range is kept as KindFloat64. Returns false for unsupported types.
func Of(x any) (Variant, bool) {
	switch v := x.(type) {
	case Variant:
		return v, true
	case *Variant:
		if v == nil {
			return Variant{}, false
		}
		return *v, true
	case Scalar:
		return FromScalar(v), true
	case int:
		return NewInt(v), true
	case int8:
		return NewInt64(int64(v)), true
	case int16:
		return NewInt64(int64(v)), true
	case int32:
		return NewInt32(v), true
	case int64:
		return NewInt64(v), true
	case uint:
		return ofUint(uint64(v)), true
	case uint8:
		return NewInt64(int64(v)), true
	case uint16:
		return NewInt64(int64(v)), true
	case uint32:
		return NewInt64(int64(v)), true
	case uint64:
		return ofUint(v), true
	case float32:
		return NewFloat32(v), true
	case float64:
		return NewFloat64(v), true
	case string:
		return NewString(v), true
	case bool:
		return NewBool(v), true
	default:
		return Variant{}, false
	}
}

func ofUint(u uint64) Variant {
	if u > math.MaxInt64 {
		return NewFloat64(float64(u))
	}
	return NewInt64(int64(u))
}

// Assignment replaces the kind and payload together; nothing of the
// previous kind survives. Each setter returns the receiver for chaining.

// SetInt32 stores val as KindInt32
func (v *Variant) SetInt32(val int32) *Variant {
	v.val = Int32Value{Val: val}
	return v
}

// SetInt64 stores val as KindInt64
func (v *Variant) SetInt64(val int64) *Variant {
	v.val = Int64Value{Val: val}
	return v
}

// SetFloat32 stores val as KindFloat32
func (v *Variant) SetFloat32(val float32) *Variant {
	v.val = Float32Value{Val: val}
	return v
}

// SetFloat64 stores val as KindFloat64
func (v *Variant) SetFloat64(val float64) *Variant {
	v.val = Float64Value{Val: val}
	return v
}

// SetString stores val as KindString
func (v *Variant) SetString(val string) *Variant {
	v.val = StrValue{val: val}
	return v
}

// SetBool stores val as KindBool
func (v *Variant) SetBool(val bool) *Variant {
	v.val = BoolValue{Val: val}
	return v
}

// Set copies the kind and payload of other into v.
// Payloads are immutable values, so the two Variants share nothing
// afterwards.
func (v *Variant) Set(other Variant) *Variant {
	v.val = other.payload()
	return v
}

// payload returns the active scalar, substituting the default for the
// zero Variant
func (v Variant) payload() Scalar {
	if v.val == nil {
		return Int64Value{}
	}
	return v.val
}

// Kind reports which kind is active
func (v Variant) Kind() Kind {
	return v.payload().Kind()
}

// Scalar returns the active payload
func (v Variant) Scalar() Scalar {
	return v.payload()
}

// Any returns the payload as its native Go value
func (v Variant) Any() any {
	return v.payload().Native()
}

// Int32 converts to a 32-bit integer. Floats truncate toward zero and
// 64-bit integers wrap. Strings parse their leading integer at 64 bits and
// then wrap, so overflowing text such as "2147483648" is not saturated.
func (v Variant) Int32() int32 {
	return v.payload().Int32()
}

// Int64 converts to a 64-bit integer. Floats truncate toward zero,
// strings parse their leading integer.
func (v Variant) Int64() int64 {
	return v.payload().Int64()
}

// Float32 converts to a single-precision float
func (v Variant) Float32() float32 {
	return v.payload().Float32()
}

// Float64 converts to a double-precision float
func (v Variant) Float64() float64 {
	return v.payload().Float64()
}

// Bool converts to a boolean. Numbers are true unless exactly zero;
// strings are true unless "", "0" or "false".
func (v Variant) Bool() bool {
	return v.payload().Bool()
}

// String converts to text: decimal integers, fixed-point floats
// (6 fractional digits for float32, 16 for float64) and true/false.
func (v Variant) String() string {
	return v.payload().String()
}

// WriteTo writes the String form of v to w
func (v Variant) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, v.String())
	return int64(n), err
}
