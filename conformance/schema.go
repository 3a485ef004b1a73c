package conformance

// TestSuite represents a complete YAML test file
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase represents a single test within a suite.
// Input builds the Variant, Then mutates it in order, and Expect is
// checked against the final state.
type TestCase struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Skip        interface{} `yaml:"skip,omitempty"` // bool or string
	Input       Input       `yaml:"input"`
	Then        []Step      `yaml:"then,omitempty"`
	Expect      Expectation `yaml:"expect"`
}

// Input describes a Variant to build: a kind name and a YAML scalar that
// is coerced to that kind. By default the value is assigned, which keeps
// the kind exactly; Construct goes through the New* constructor instead,
// where a 32-bit integer is stored as int64.
type Input struct {
	Kind      string      `yaml:"kind"`
	Value     interface{} `yaml:"value"`
	Construct bool        `yaml:"construct,omitempty"`
}

// Step is one mutation applied after the input is built. Exactly one of
// Assign or Copy is set.
type Step struct {
	Assign *Input `yaml:"assign,omitempty"` // typed assignment of a value
	Copy   *Input `yaml:"copy,omitempty"`   // copy-assignment from another Variant
}

// Expectation lists the accessor results a case must produce.
// Unset fields are not checked.
type Expectation struct {
	Kind    string   `yaml:"kind,omitempty"`
	Int32   *int32   `yaml:"int32,omitempty"`
	Int64   *int64   `yaml:"int64,omitempty"`
	Float32 *float32 `yaml:"float32,omitempty"`
	Float64 *float64 `yaml:"float64,omitempty"`
	Bool    *bool    `yaml:"bool,omitempty"`
	String  *string  `yaml:"string,omitempty"`
}

// IsEmpty reports whether no expectation is set
func (e Expectation) IsEmpty() bool {
	return e.Kind == "" && e.Int32 == nil && e.Int64 == nil && e.Float32 == nil &&
		e.Float64 == nil && e.Bool == nil && e.String == nil
}

// IsSkipped returns true if this test should be skipped
func (tc *TestCase) IsSkipped() (bool, string) {
	if tc.Skip == nil {
		return false, ""
	}

	switch v := tc.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
		return false, ""
	case string:
		return true, v
	default:
		return false, ""
	}
}
