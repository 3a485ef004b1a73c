package types

import "strconv"

// Int32Value represents a 32-bit integer payload
type Int32Value struct {
	Val int32
}

// Kind returns KindInt32
func (i Int32Value) Kind() Kind {
	return KindInt32
}

// Int32 returns the stored value
func (i Int32Value) Int32() int32 {
	return i.Val
}

// Int64 widens the stored value
func (i Int32Value) Int64() int64 {
	return int64(i.Val)
}

// Float32 converts to the nearest float32
func (i Int32Value) Float32() float32 {
	return float32(i.Val)
}

// Float64 converts exactly
func (i Int32Value) Float64() float64 {
	return float64(i.Val)
}

// Bool returns false only for 0
func (i Int32Value) Bool() bool {
	return i.Val != 0
}

// String returns the plain decimal rendering
func (i Int32Value) String() string {
	return strconv.FormatInt(int64(i.Val), 10)
}

// Native returns the value as an int32
func (i Int32Value) Native() any {
	return i.Val
}

func (Int32Value) sealed() {}

// Int64Value represents a 64-bit integer payload
type Int64Value struct {
	Val int64
}

// Kind returns KindInt64
func (i Int64Value) Kind() Kind {
	return KindInt64
}

// Int32 narrows with a wrapping cast, keeping the low 32 bits
func (i Int64Value) Int32() int32 {
	return int32(i.Val)
}

// Int64 returns the stored value
func (i Int64Value) Int64() int64 {
	return i.Val
}

// Float32 converts to the nearest float32
func (i Int64Value) Float32() float32 {
	return float32(i.Val)
}

// Float64 converts to the nearest float64
func (i Int64Value) Float64() float64 {
	return float64(i.Val)
}

// Bool returns false only for 0
func (i Int64Value) Bool() bool {
	return i.Val != 0
}

// String returns the plain decimal rendering
func (i Int64Value) String() string {
	return strconv.FormatInt(i.Val, 10)
}

// Native returns the value as an int64
func (i Int64Value) Native() any {
	return i.Val
}

func (Int64Value) sealed() {}
