package prop

import "fmt"

// Kind tags which arm of Value is populated.
type Kind int

// The five arms of the property sum type.
const (
	KindInvalid Kind = iota
	KindStr
	KindI64
	KindU64
	KindF64
	KindBool
)

// String renders a Kind for error messages and debugging.
func (k Kind) String() string {
	switch k {
	case KindStr:
		return "Str"
	case KindI64:
		return "I64"
	case KindU64:
		return "U64"
	case KindF64:
		return "F64"
	case KindBool:
		return "Bool"
	default:
		return "Invalid"
	}
}

// Value is a tagged union over {String, int64, uint64, float64, bool}.
// The zero Value has Kind() == KindInvalid. All fields are comparable, so
// Value equality via == (and Equal) is structural.
type Value struct {
	kind Kind
	str  string
	i64  int64
	u64  uint64
	f64  float64
	b    bool
}

// Str constructs a string-valued Value.
func Str(v string) Value { return Value{kind: KindStr, str: v} }

// I64 constructs a signed 64-bit Value.
func I64(v int64) Value { return Value{kind: KindI64, i64: v} }

// U64 constructs an unsigned 64-bit Value.
func U64(v uint64) Value { return Value{kind: KindU64, u64: v} }

// F64 constructs a float64 Value.
func F64(v float64) Value { return Value{kind: KindF64, f64: v} }

// Bool constructs a bool Value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Kind reports which arm of the sum type v holds.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v was built by one of the constructors above
// (as opposed to the zero Value).
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// AsStr returns the string arm and whether v actually holds one.
func (v Value) AsStr() (string, bool) { return v.str, v.kind == KindStr }

// AsI64 returns the int64 arm and whether v actually holds one.
func (v Value) AsI64() (int64, bool) { return v.i64, v.kind == KindI64 }

// AsU64 returns the uint64 arm and whether v actually holds one.
func (v Value) AsU64() (uint64, bool) { return v.u64, v.kind == KindU64 }

// AsF64 returns the float64 arm and whether v actually holds one.
func (v Value) AsF64() (float64, bool) { return v.f64, v.kind == KindF64 }

// AsBool returns the bool arm and whether v actually holds one.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// Equal reports structural equality: same Kind and same payload.
func (v Value) Equal(other Value) bool { return v == other }

// String renders the held value for logs and debugging. It never panics.
func (v Value) String() string {
	switch v.kind {
	case KindStr:
		return v.str
	case KindI64:
		return fmt.Sprintf("%d", v.i64)
	case KindU64:
		return fmt.Sprintf("%d", v.u64)
	case KindF64:
		return fmt.Sprintf("%g", v.f64)
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	default:
		return "<invalid>"
	}
}
