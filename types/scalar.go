package types

// Scalar is the payload held by a Variant.
// Each implementation is one row of the coercion matrix: it knows how to
// render itself as every supported kind, so a new kind cannot be added
// without supplying all six conversions.
type Scalar interface {
	Kind() Kind
	Int32() int32
	Int64() int64
	Float32() float32
	Float64() float64
	Bool() bool
	String() string

	// Native returns the payload as its Go value (int32, int64, float32,
	// float64, string or bool)
	Native() any

	sealed()
}

var (
	_ Scalar = Int32Value{}
	_ Scalar = Int64Value{}
	_ Scalar = Float32Value{}
	_ Scalar = Float64Value{}
	_ Scalar = StrValue{}
	_ Scalar = BoolValue{}
)
