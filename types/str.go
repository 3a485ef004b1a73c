package types

// StrValue represents a string payload
type StrValue struct {
	val string
}

// Kind returns KindString
func (s StrValue) Kind() Kind {
	return KindString
}

// Int32 parses the leading decimal integer as Int64 does, then keeps the
// low 32 bits. Text outside the int32 range wraps rather than saturating:
// "2147483648" yields -2147483648.
func (s StrValue) Int32() int32 {
	return int32(parseIntPrefix(s.val))
}

// Int64 parses the leading decimal integer; text without one yields 0
func (s StrValue) Int64() int64 {
	return parseIntPrefix(s.val)
}

// Float32 parses the leading decimal number at single precision
func (s StrValue) Float32() float32 {
	return float32(parseFloatPrefix(s.val, 32))
}

// Float64 parses the leading decimal number; text without one yields 0
func (s StrValue) Float64() float64 {
	return parseFloatPrefix(s.val, 64)
}

// Bool is false for "", "0" and "false" (case-sensitive) and true otherwise
func (s StrValue) Bool() bool {
	switch s.val {
	case "", "0", "false":
		return false
	}
	return true
}

// String returns the stored text unchanged
func (s StrValue) String() string {
	return s.val
}

// Native returns the value as a string
func (s StrValue) Native() any {
	return s.val
}

func (StrValue) sealed() {}

// Value returns the internal string value
func (s StrValue) Value() string {
	return s.val
}
