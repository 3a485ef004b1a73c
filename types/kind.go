package types

import "strings"

// Kind identifies which scalar a Variant currently holds
type Kind int

const (
	KindInt32   Kind = 0
	KindInt64   Kind = 1
	KindFloat32 Kind = 2
	KindFloat64 Kind = 3
	KindString  Kind = 4
	KindBool    Kind = 5
)

// Kinds lists every kind in declaration order
var Kinds = []Kind{KindInt32, KindInt64, KindFloat32, KindFloat64, KindString, KindBool}

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// ParseKind converts a kind name to a Kind.
// Accepts the names returned by String plus the C-style aliases
// (int, long, float, double, str).
func ParseKind(name string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "int32", "int":
		return KindInt32, true
	case "int64", "long":
		return KindInt64, true
	case "float32", "float":
		return KindFloat32, true
	case "float64", "double":
		return KindFloat64, true
	case "string", "str":
		return KindString, true
	case "bool", "boolean":
		return KindBool, true
	default:
		return 0, false
	}
}
