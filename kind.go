package cfgitems

import (
	"fmt"
	"strings"
)

// Kind identifies the type of value an item holds.
type Kind uint8

const (
	// KindUndefined is a placeholder and never backs a registered item.
	KindUndefined Kind = iota
	KindBool
	KindString
	KindDouble
	KindS8
	KindU8
	KindS16
	KindU16
	KindS32
	KindU32
	KindS64
	KindU64
)

var kindNames = [...]string{
	KindUndefined: "undefined",
	KindBool:      "bool",
	KindString:    "string",
	KindDouble:    "double",
	KindS8:        "s8",
	KindU8:        "u8",
	KindS16:       "s16",
	KindU16:       "u16",
	KindS32:       "s32",
	KindU32:       "u32",
	KindS64:       "s64",
	KindU64:       "u64",
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Valid reports whether k is one of the concrete item kinds.
func (k Kind) Valid() bool {
	return k > KindUndefined && k <= KindU64
}

// ParseKind returns the Kind for a name as produced by Kind.String.
// Matching is case-insensitive; "undefined" is rejected.
func ParseKind(name string) (Kind, error) {
	for k := KindBool; k <= KindU64; k++ {
		if strings.EqualFold(kindNames[k], name) {
			return k, nil
		}
	}
	return KindUndefined, fmt.Errorf("unknown item kind %q", name)
}

// bits returns the width of an integer kind and whether it is signed.
func (k Kind) bits() (int, bool) {
	switch k {
	case KindS8:
		return 8, true
	case KindU8:
		return 8, false
	case KindS16:
		return 16, true
	case KindU16:
		return 16, false
	case KindS32:
		return 32, true
	case KindU32:
		return 32, false
	case KindS64:
		return 64, true
	case KindU64:
		return 64, false
	}
	return 0, false
}
