package conformance

import (
	"errors"
	"fmt"
	"math"

	"github.com/SethHamilton/var/trace"
	"github.com/SethHamilton/var/types"
)

// TestResult represents the outcome of running a single test
type TestResult struct {
	Test       LoadedTest
	Passed     bool
	Skipped    bool
	SkipReason string
	Error      error
}

// Runner executes conformance tests
type Runner struct {
	tracer *trace.Tracer
}

// NewRunner creates a test runner that reports to the global tracer
func NewRunner() *Runner {
	return &Runner{tracer: trace.Global()}
}

// NewRunnerWithTracer creates a test runner with its own tracer (may be nil)
func NewRunnerWithTracer(t *trace.Tracer) *Runner {
	return &Runner{tracer: t}
}

// Run executes a single test case
func (r *Runner) Run(test LoadedTest) TestResult {
	// Check if test should be skipped
	if skipped, reason := test.Test.IsSkipped(); skipped {
		return TestResult{
			Test:       test,
			Skipped:    true,
			SkipReason: reason,
		}
	}

	if test.Test.Expect.IsEmpty() {
		return TestResult{
			Test:   test,
			Passed: false,
			Error:  errors.New("no expectation specified"),
		}
	}

	v, err := BuildVariant(test.Test.Input)
	if err != nil {
		return TestResult{
			Test:   test,
			Passed: false,
			Error:  fmt.Errorf("input: %w", err),
		}
	}
	r.tracer.CaseStart(test.File, test.Test.Name, v)

	for i, step := range test.Test.Then {
		if err := applyStep(&v, step); err != nil {
			return TestResult{
				Test:   test,
				Passed: false,
				Error:  fmt.Errorf("step %d: %w", i+1, err),
			}
		}
	}

	passed, err := r.checkExpectation(test.Test, v)
	r.tracer.CaseResult(test.Test.Name, passed, err)
	return TestResult{
		Test:   test,
		Passed: passed,
		Error:  err,
	}
}

// RunAll executes all loaded tests
func (r *Runner) RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, len(tests))
	for i, test := range tests {
		results[i] = r.Run(test)
	}
	return results
}

// SummaryStats computes statistics from test results
type SummaryStats struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// ComputeStats generates statistics from test results
func ComputeStats(results []TestResult) SummaryStats {
	stats := SummaryStats{Total: len(results)}
	for _, r := range results {
		if r.Skipped {
			stats.Skipped++
		} else if r.Passed {
			stats.Passed++
		} else {
			stats.Failed++
		}
	}
	return stats
}

// FormatStats returns a human-readable summary
func FormatStats(stats SummaryStats) string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped (%d total)",
		stats.Passed, stats.Failed, stats.Skipped, stats.Total)
}

// BuildVariant creates the Variant an Input describes. The YAML value is
// first wrapped as-is, then coerced to the requested kind.
func BuildVariant(in Input) (types.Variant, error) {
	kind, ok := types.ParseKind(in.Kind)
	if !ok {
		return types.Variant{}, fmt.Errorf("unknown kind: %q", in.Kind)
	}
	src, ok := types.Of(in.Value)
	if !ok {
		return types.Variant{}, fmt.Errorf("unsupported YAML value: %T", in.Value)
	}

	if in.Construct {
		switch kind {
		case types.KindInt32:
			return types.NewInt32(src.Int32()), nil
		case types.KindInt64:
			return types.NewInt64(src.Int64()), nil
		case types.KindFloat32:
			return types.NewFloat32(src.Float32()), nil
		case types.KindFloat64:
			return types.NewFloat64(src.Float64()), nil
		case types.KindString:
			return types.NewString(src.String()), nil
		case types.KindBool:
			return types.NewBool(src.Bool()), nil
		}
	}

	var v types.Variant
	assign(&v, kind, src)
	return v, nil
}

func assign(v *types.Variant, kind types.Kind, src types.Variant) {
	switch kind {
	case types.KindInt32:
		v.SetInt32(src.Int32())
	case types.KindInt64:
		v.SetInt64(src.Int64())
	case types.KindFloat32:
		v.SetFloat32(src.Float32())
	case types.KindFloat64:
		v.SetFloat64(src.Float64())
	case types.KindString:
		v.SetString(src.String())
	case types.KindBool:
		v.SetBool(src.Bool())
	}
}

func applyStep(v *types.Variant, step Step) error {
	switch {
	case step.Assign != nil && step.Copy != nil:
		return errors.New("step sets both assign and copy")
	case step.Assign != nil:
		src, err := BuildVariant(*step.Assign)
		if err != nil {
			return err
		}
		// BuildVariant already produced the exact kind by assignment;
		// replay it on v so the receiver's setter is what runs
		assign(v, src.Kind(), src)
		return nil
	case step.Copy != nil:
		src, err := BuildVariant(*step.Copy)
		if err != nil {
			return err
		}
		v.Set(src)
		return nil
	default:
		return errors.New("empty step")
	}
}

// checkExpectation checks every expectation the case sets and reports the
// first mismatch
func (r *Runner) checkExpectation(test TestCase, v types.Variant) (bool, error) {
	expect := test.Expect
	name := test.Name
	from := v.Kind()

	if expect.Kind != "" {
		want, ok := types.ParseKind(expect.Kind)
		if !ok {
			return false, fmt.Errorf("unknown kind: %s", expect.Kind)
		}
		if from != want {
			return false, fmt.Errorf("expected kind %s, got %s", want, from)
		}
	}

	if expect.Int32 != nil {
		got := v.Int32()
		r.tracer.Coercion(name, from, types.KindInt32, got)
		if got != *expect.Int32 {
			return false, fmt.Errorf("int32: expected %d, got %d", *expect.Int32, got)
		}
	}

	if expect.Int64 != nil {
		got := v.Int64()
		r.tracer.Coercion(name, from, types.KindInt64, got)
		if got != *expect.Int64 {
			return false, fmt.Errorf("int64: expected %d, got %d", *expect.Int64, got)
		}
	}

	if expect.Float32 != nil {
		got := v.Float32()
		r.tracer.Coercion(name, from, types.KindFloat32, got)
		if !sameFloat(float64(got), float64(*expect.Float32)) {
			return false, fmt.Errorf("float32: expected %v, got %v", *expect.Float32, got)
		}
	}

	if expect.Float64 != nil {
		got := v.Float64()
		r.tracer.Coercion(name, from, types.KindFloat64, got)
		if !sameFloat(got, *expect.Float64) {
			return false, fmt.Errorf("float64: expected %v, got %v", *expect.Float64, got)
		}
	}

	if expect.Bool != nil {
		got := v.Bool()
		r.tracer.Coercion(name, from, types.KindBool, got)
		if got != *expect.Bool {
			return false, fmt.Errorf("bool: expected %t, got %t", *expect.Bool, got)
		}
	}

	if expect.String != nil {
		got := v.String()
		r.tracer.Coercion(name, from, types.KindString, got)
		if got != *expect.String {
			return false, fmt.Errorf("string: expected %q, got %q", *expect.String, got)
		}
	}

	return true, nil
}

// sameFloat compares exactly, treating NaN as equal to NaN
func sameFloat(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return a == b
}
