package cfgitems

import (
	"strconv"
)

// Value is a tagged configuration value. Exactly one payload field is meaningful,
// selected by the kind tag. The zero Value has KindUndefined.
type Value struct {
	kind Kind
	b    bool
	s    string
	f    float64
	i    int64  // signed integer kinds
	u    uint64 // unsigned integer kinds
}

// BoolValue returns a bool Value.
func BoolValue(v bool) Value { return Value{kind: KindBool, b: v} }

// StringValue returns a string Value.
func StringValue(v string) Value { return Value{kind: KindString, s: v} }

// DoubleValue returns a double Value.
func DoubleValue(v float64) Value { return Value{kind: KindDouble, f: v} }

// S8Value returns an s8 Value.
func S8Value(v int8) Value { return Value{kind: KindS8, i: int64(v)} }

// U8Value returns a u8 Value.
func U8Value(v uint8) Value { return Value{kind: KindU8, u: uint64(v)} }

// S16Value returns an s16 Value.
func S16Value(v int16) Value { return Value{kind: KindS16, i: int64(v)} }

// U16Value returns a u16 Value.
func U16Value(v uint16) Value { return Value{kind: KindU16, u: uint64(v)} }

// S32Value returns an s32 Value.
func S32Value(v int32) Value { return Value{kind: KindS32, i: int64(v)} }

// U32Value returns a u32 Value.
func U32Value(v uint32) Value { return Value{kind: KindU32, u: uint64(v)} }

// S64Value returns an s64 Value.
func S64Value(v int64) Value { return Value{kind: KindS64, i: v} }

// U64Value returns a u64 Value.
func U64Value(v uint64) Value { return Value{kind: KindU64, u: v} }

// zeroValue returns the zero value tagged with kind k.
func zeroValue(k Kind) Value {
	return Value{kind: k}
}

// Kind returns the kind tag of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Interface returns the payload as the Go type matching the kind
// (bool, string, float64, int8 ... uint64), or nil for KindUndefined.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindString:
		return v.s
	case KindDouble:
		return v.f
	case KindS8:
		return int8(v.i)
	case KindU8:
		return uint8(v.u)
	case KindS16:
		return int16(v.i)
	case KindU16:
		return uint16(v.u)
	case KindS32:
		return int32(v.i)
	case KindU32:
		return uint32(v.u)
	case KindS64:
		return v.i
	case KindU64:
		return v.u
	}
	return nil
}

// String returns the canonical text of the value. For every kind except
// KindUndefined the result converts back to the same value with Convert.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString:
		return v.s
	case KindDouble:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindS8, KindS16, KindS32, KindS64:
		return strconv.FormatInt(v.i, 10)
	case KindU8, KindU16, KindU32, KindU64:
		return strconv.FormatUint(v.u, 10)
	}
	return ""
}
