package types

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsDefault(t *testing.T) {
	var v Variant
	assert.Equal(t, KindInt64, v.Kind())
	assert.Equal(t, int64(0), v.Int64())
	assert.Equal(t, "0", v.String())
	assert.False(t, v.Bool())
	assert.Equal(t, New().Scalar(), v.Scalar())
}

func TestIdentity(t *testing.T) {
	var v Variant

	v.SetInt32(-7)
	assert.Equal(t, KindInt32, v.Kind())
	assert.Equal(t, int32(-7), v.Int32())

	v.SetInt64(math.MinInt64)
	assert.Equal(t, KindInt64, v.Kind())
	assert.Equal(t, int64(math.MinInt64), v.Int64())

	v.SetFloat32(1.25)
	assert.Equal(t, KindFloat32, v.Kind())
	assert.Equal(t, float32(1.25), v.Float32())

	v.SetFloat64(math.Pi)
	assert.Equal(t, KindFloat64, v.Kind())
	assert.Equal(t, math.Pi, v.Float64())

	v.SetString("  spaced out ")
	assert.Equal(t, KindString, v.Kind())
	assert.Equal(t, "  spaced out ", v.String())

	v.SetBool(true)
	assert.Equal(t, KindBool, v.Kind())
	assert.True(t, v.Bool())
}

func TestConstructorKinds(t *testing.T) {
	tests := []struct {
		name string
		v    Variant
		want Kind
	}{
		{"New", New(), KindInt64},
		{"NewInt32 widens", NewInt32(5), KindInt64},
		{"NewInt", NewInt(5), KindInt64},
		{"NewInt64", NewInt64(5), KindInt64},
		{"NewFloat32", NewFloat32(5), KindFloat32},
		{"NewFloat64", NewFloat64(5), KindFloat64},
		{"NewString", NewString("5"), KindString},
		{"NewBool", NewBool(true), KindBool},
		{"FromScalar nil", FromScalar(nil), KindInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Kind())
		})
	}
}

func TestSetInt32KeepsNarrowKind(t *testing.T) {
	constructed := NewInt32(5)
	var assigned Variant
	assigned.SetInt32(5)

	assert.Equal(t, KindInt64, constructed.Kind())
	assert.Equal(t, KindInt32, assigned.Kind())
	assert.Equal(t, constructed.Int64(), assigned.Int64())
}

func TestAssignmentReplacesKind(t *testing.T) {
	for _, start := range []Variant{NewInt64(1), NewString("x"), NewBool(true), NewFloat32(2)} {
		v := start
		v.SetFloat64(3.14)
		assert.Equal(t, KindFloat64, v.Kind(), "starting from %s", start.Kind())
		assert.Equal(t, 3.14, v.Float64())
	}

	v := NewString("hello")
	v.SetInt64(0)
	assert.Equal(t, "0", v.String(), "no trace of the previous string")
}

func TestAssignmentChains(t *testing.T) {
	var v Variant
	got := v.SetString("abc").SetBool(false).SetInt32(9)
	require.Same(t, &v, got)
	assert.Equal(t, KindInt32, v.Kind())
	assert.Equal(t, int32(9), v.Int32())
}

// Set is a full copy, never a no-op
func TestSetCopiesOther(t *testing.T) {
	src := NewString("hello")
	var dst Variant
	dst.SetFloat64(1.5)

	dst.Set(src)
	assert.Equal(t, KindString, dst.Kind())
	assert.Equal(t, "hello", dst.String())

	src.SetInt64(1)
	assert.Equal(t, KindString, dst.Kind(), "copy must not alias the source")
	assert.Equal(t, "hello", dst.String())

	dst.Set(dst)
	assert.Equal(t, "hello", dst.String())
}

func TestValueSemantics(t *testing.T) {
	a := NewFloat64(2.5)
	b := a
	b.SetBool(true)

	assert.Equal(t, KindFloat64, a.Kind())
	assert.Equal(t, 2.5, a.Float64())
	assert.Equal(t, KindBool, b.Kind())
}

func TestAccessorsHaveNoSideEffects(t *testing.T) {
	v := NewString("12.75 apples")

	assert.Equal(t, int32(12), v.Int32())
	assert.Equal(t, int64(12), v.Int64())
	assert.Equal(t, float32(12.75), v.Float32())
	assert.Equal(t, 12.75, v.Float64())
	assert.True(t, v.Bool())

	assert.Equal(t, KindString, v.Kind())
	assert.Equal(t, "12.75 apples", v.String())
}

func TestNumericTruncation(t *testing.T) {
	assert.Equal(t, int32(3), NewFloat64(3.99).Int32())
	assert.Equal(t, int32(-3), NewFloat64(-3.99).Int32())
	assert.Equal(t, int64(3), NewFloat64(3.99).Int64())
	assert.Equal(t, int64(-3), NewFloat32(-3.99).Int64())
	assert.Equal(t, int32(0), NewFloat64(0.999).Int32())
}

func TestFloatToIntDegrades(t *testing.T) {
	assert.Equal(t, int32(0), NewFloat64(math.NaN()).Int32())
	assert.Equal(t, int64(0), NewFloat32(float32(math.NaN())).Int64())
	assert.Equal(t, int32(math.MaxInt32), NewFloat64(1e20).Int32())
	assert.Equal(t, int32(math.MinInt32), NewFloat64(-1e20).Int32())
	assert.Equal(t, int64(math.MaxInt64), NewFloat64(math.Inf(1)).Int64())
	assert.Equal(t, int64(math.MinInt64), NewFloat64(math.Inf(-1)).Int64())
	assert.Equal(t, int32(math.MaxInt32), NewFloat64(2147483647.9).Int32())
}

func TestIntNarrowingWraps(t *testing.T) {
	assert.Equal(t, int32(5), NewInt64(1<<32+5).Int32())
	assert.Equal(t, int32(-1), NewInt64(math.MaxInt64).Int32())
	assert.Equal(t, int32(math.MinInt32), NewString("2147483648").Int32())
	assert.Equal(t, int32(1), NewString("4294967297 text").Int32(), "text wraps, not saturates")
	assert.Equal(t, int32(-1), NewString("99999999999999999999").Int32(), "int64 saturation then wrap")
}

func TestIntToFloat(t *testing.T) {
	var v Variant
	v.SetInt32(-4)
	assert.Equal(t, float32(-4), v.Float32())
	assert.Equal(t, -4.0, v.Float64())
	assert.Equal(t, float32(16777216), NewInt64(16777217).Float32())
	assert.Equal(t, float32(0.1), NewFloat64(0.1).Float32())
	assert.Equal(t, float64(float32(0.1)), NewFloat32(0.1).Float64())
}

func TestNumericToBool(t *testing.T) {
	var v Variant
	assert.False(t, v.SetInt32(0).Bool())
	assert.True(t, v.SetInt32(-1).Bool())
	assert.False(t, NewInt64(0).Bool())
	assert.True(t, NewInt64(1<<40).Bool())
	assert.False(t, NewFloat32(0).Bool())
	assert.False(t, NewFloat64(math.Copysign(0, -1)).Bool())
	assert.True(t, NewFloat64(1e-300).Bool(), "no epsilon")
	assert.True(t, NewFloat64(math.NaN()).Bool())
}

func TestBoolToOthers(t *testing.T) {
	tru, fls := NewBool(true), NewBool(false)

	assert.Equal(t, int32(1), tru.Int32())
	assert.Equal(t, int64(0), fls.Int64())
	assert.Equal(t, float32(1), tru.Float32())
	assert.Equal(t, 0.0, fls.Float64())
	assert.Equal(t, "true", tru.String())
	assert.Equal(t, "false", fls.String())
}

func TestStringToBool(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"FALSE", true},
		{"False", true},
		{"false ", true},
		{"0.0", true},
		{"00", true},
		{"true", true},
		{"anything", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NewString(tt.in).Bool(), "%q", tt.in)
	}
}

func TestStringToNumbers(t *testing.T) {
	assert.Equal(t, 1234.56, NewString("1234.56 test").Float64())
	assert.Equal(t, int32(1234), NewString("1234.56 test").Int32())
	assert.Equal(t, int32(0), NewString("abc").Int32())
	assert.Equal(t, int64(0), NewString("").Int64())
	assert.Equal(t, 0.0, NewString("abc").Float64())
	assert.Equal(t, float32(0), NewString("-").Float32())
	assert.Equal(t, int64(-42), NewString("-42 degrees").Int64())
}

func TestNumericToString(t *testing.T) {
	var v Variant
	tests := []struct {
		name string
		v    Variant
		want string
	}{
		{"int32", *v.SetInt32(-2147483648), "-2147483648"},
		{"int64", NewInt64(1234567890123), "1234567890123"},
		{"float32", NewFloat32(1.5), "1.500000"},
		{"float32 rounding", NewFloat32(0.1), "0.100000"},
		{"float64", NewFloat64(2.5), "2.5000000000000000"},
		{"float64 whole", NewFloat64(-3), "-3.0000000000000000"},
		{"float64 nan", NewFloat64(math.NaN()), "nan"},
		{"float32 inf", NewFloat32(float32(math.Inf(-1))), "-inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	assert.Equal(t, int64(5), NewString(NewInt(5).String()).Int64())
	assert.Equal(t, 2.5, NewString(NewFloat64(2.5).String()).Float64())
	assert.Equal(t, float32(1.5), NewString(NewFloat32(1.5).String()).Float32())
	assert.True(t, NewString(NewBool(true).String()).Bool())
	assert.False(t, NewString(NewBool(false).String()).Bool())
	assert.True(t, math.IsInf(NewString(NewFloat64(math.Inf(-1)).String()).Float64(), -1))
}

func TestOf(t *testing.T) {
	var held Variant
	held.SetInt32(3)

	tests := []struct {
		name string
		in   any
		want Kind
	}{
		{"int", 7, KindInt64},
		{"int8", int8(7), KindInt64},
		{"int32 widens", int32(7), KindInt64},
		{"uint16", uint16(7), KindInt64},
		{"uint64 small", uint64(7), KindInt64},
		{"uint64 huge", uint64(math.MaxUint64), KindFloat64},
		{"float32", float32(7), KindFloat32},
		{"float64", 7.0, KindFloat64},
		{"string", "7", KindString},
		{"bool", true, KindBool},
		{"variant", held, KindInt32},
		{"variant pointer", &held, KindInt32},
		{"scalar", Float32Value{Val: 1}, KindFloat32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := Of(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, v.Kind())
		})
	}

	_, ok := Of([]int{1})
	assert.False(t, ok)
	_, ok = Of((*Variant)(nil))
	assert.False(t, ok)
	_, ok = Of(nil)
	assert.False(t, ok)
}

func TestAny(t *testing.T) {
	var v Variant
	assert.Equal(t, int32(2), v.SetInt32(2).Any())
	assert.Equal(t, int64(2), NewInt64(2).Any())
	assert.Equal(t, float32(2), NewFloat32(2).Any())
	assert.Equal(t, 2.0, NewFloat64(2).Any())
	assert.Equal(t, "2", NewString("2").Any())
	assert.Equal(t, true, NewBool(true).Any())
	assert.Equal(t, int64(0), Variant{}.Any())
}

func TestWriteTo(t *testing.T) {
	var buf bytes.Buffer
	v := NewFloat64(2.5)

	n, err := v.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len("2.5000000000000000")), n)
	assert.Equal(t, v.String(), buf.String())

	var _ io.WriterTo = v
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestWriteToReportsSinkError(t *testing.T) {
	_, err := NewBool(true).WriteTo(failingWriter{})
	assert.EqualError(t, err, "sink closed")
}

func TestFmtUsesStringForm(t *testing.T) {
	assert.Equal(t, "2.5000000000000000", fmt.Sprint(NewFloat64(2.5)))
	assert.Equal(t, "[true 7]", fmt.Sprintf("%v", []Variant{NewBool(true), NewInt(7)}))
}
