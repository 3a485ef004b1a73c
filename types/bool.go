package types

// BoolValue represents a boolean payload
type BoolValue struct {
	Val bool
}

// Kind returns KindBool
func (b BoolValue) Kind() Kind {
	return KindBool
}

// Int32 returns 1 for true and 0 for false
func (b BoolValue) Int32() int32 {
	if b.Val {
		return 1
	}
	return 0
}

// Int64 returns 1 for true and 0 for false
func (b BoolValue) Int64() int64 {
	if b.Val {
		return 1
	}
	return 0
}

// Float32 returns 1 for true and 0 for false
func (b BoolValue) Float32() float32 {
	if b.Val {
		return 1
	}
	return 0
}

// Float64 returns 1 for true and 0 for false
func (b BoolValue) Float64() float64 {
	if b.Val {
		return 1
	}
	return 0
}

// Bool returns the stored value
func (b BoolValue) Bool() bool {
	return b.Val
}

// String returns the literal words true or false
func (b BoolValue) String() string {
	if b.Val {
		return "true"
	}
	return "false"
}

// Native returns the value as a bool
func (b BoolValue) Native() any {
	return b.Val
}

func (BoolValue) sealed() {}
