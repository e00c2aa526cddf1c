package cfgitems

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Converters turn text into typed values. They share one contract:
//   - an empty string fails with ErrEmptyInput
//   - the whole string must be consumed, otherwise ErrSyntax
//   - values outside the kind's range fail with ErrRange
//
// Integer text is an optional sign followed by decimal digits, 0x/0X and
// hexadecimal digits, or a leading 0 and octal digits.

var (
	trueTokens  = []string{"1", "true", "on"}
	falseTokens = []string{"0", "false", "off"}
)

// ToBool accepts "1", "true", "on" and "0", "false", "off", case-insensitively.
func ToBool(s string) (bool, error) {
	if s == "" {
		return false, convError(KindBool, s, ErrEmptyInput)
	}
	for _, tok := range trueTokens {
		if strings.EqualFold(s, tok) {
			return true, nil
		}
	}
	for _, tok := range falseTokens {
		if strings.EqualFold(s, tok) {
			return false, nil
		}
	}
	return false, convError(KindBool, s, ErrSyntax)
}

// ToString validates that s fits into an item buffer.
func ToString(s string) (string, error) {
	if s == "" {
		return "", convError(KindString, s, ErrEmptyInput)
	}
	if len(s) >= StringCapacity {
		return "", convError(KindString, s, ErrStringTooLong)
	}
	return s, nil
}

// ToDouble parses a floating-point number. A hexadecimal mantissa needs no
// binary exponent ("0x10" is 16). Overflow to infinity and underflow of a
// non-zero mantissa to zero are errors; the literals "inf" and "nan" are accepted.
func ToDouble(s string) (float64, error) {
	if s == "" {
		return 0, convError(KindDouble, s, ErrEmptyInput)
	}
	if strings.ContainsRune(s, '_') {
		return 0, convError(KindDouble, s, ErrSyntax)
	}

	text := s
	if _, hex := floatMantissa(s); hex && !strings.ContainsAny(s, "pP") {
		text += "p0"
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, convError(KindDouble, s, ErrSyntax)
	}
	if math.IsInf(f, 0) && err != nil {
		return 0, convError(KindDouble, s, ErrRange)
	}
	if f == 0 {
		if mantissa, hex := floatMantissa(s); hasNonZeroDigit(mantissa, hex) {
			return 0, convError(KindDouble, s, ErrRange)
		}
	}
	return f, nil
}

// floatMantissa strips the sign, hex prefix and exponent from a float literal.
func floatMantissa(s string) (string, bool) {
	s = strings.TrimLeft(s, "+-")
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		m, _, _ := strings.Cut(strings.ToLower(s[2:]), "p")
		return m, true
	}
	m, _, _ := strings.Cut(strings.ToLower(s), "e")
	return m, false
}

func hasNonZeroDigit(mantissa string, hex bool) bool {
	digits := "123456789"
	if hex {
		digits += "abcdef"
	}
	return strings.ContainsAny(mantissa, digits)
}

// ToS8 parses an integer literal into an int8.
func ToS8(s string) (int8, error) {
	i, err := parseSigned(s, KindS8)
	return int8(i), err
}

// ToU8 parses an integer literal into a uint8.
func ToU8(s string) (uint8, error) {
	u, err := parseUnsigned(s, KindU8)
	return uint8(u), err
}

// ToS16 parses an integer literal into an int16.
func ToS16(s string) (int16, error) {
	i, err := parseSigned(s, KindS16)
	return int16(i), err
}

// ToU16 parses an integer literal into a uint16.
func ToU16(s string) (uint16, error) {
	u, err := parseUnsigned(s, KindU16)
	return uint16(u), err
}

// ToS32 parses an integer literal into an int32.
func ToS32(s string) (int32, error) {
	i, err := parseSigned(s, KindS32)
	return int32(i), err
}

// ToU32 parses an integer literal into a uint32.
func ToU32(s string) (uint32, error) {
	u, err := parseUnsigned(s, KindU32)
	return uint32(u), err
}

// ToS64 parses an integer literal into an int64.
func ToS64(s string) (int64, error) {
	return parseSigned(s, KindS64)
}

// ToU64 parses an integer literal into a uint64.
func ToU64(s string) (uint64, error) {
	return parseUnsigned(s, KindU64)
}

// Convert parses text into a Value of the given kind.
func Convert(kind Kind, text string) (Value, error) {
	switch kind {
	case KindBool:
		b, err := ToBool(text)
		return BoolValue(b), err
	case KindString:
		s, err := ToString(text)
		return StringValue(s), err
	case KindDouble:
		f, err := ToDouble(text)
		return DoubleValue(f), err
	case KindS8, KindS16, KindS32, KindS64:
		i, err := parseSigned(text, kind)
		return Value{kind: kind, i: i}, err
	case KindU8, KindU16, KindU32, KindU64:
		u, err := parseUnsigned(text, kind)
		return Value{kind: kind, u: u}, err
	}
	return Value{}, fmt.Errorf("cannot convert to %s: %w", kind, ErrKindMismatch)
}

// parseSigned returns 0 on any error so that callers never see a partial value.
func parseSigned(s string, kind Kind) (int64, error) {
	bits, _ := kind.bits()
	neg, mag, err := parseMagnitude(s, kind)
	if err != nil {
		return 0, err
	}
	limit := uint64(1) << (bits - 1) // |min|; max is limit-1
	if neg {
		if mag > limit {
			return 0, convError(kind, s, ErrRange)
		}
		return -int64(mag), nil
	}
	if mag >= limit {
		return 0, convError(kind, s, ErrRange)
	}
	return int64(mag), nil
}

func parseUnsigned(s string, kind Kind) (uint64, error) {
	bits, _ := kind.bits()
	neg, mag, err := parseMagnitude(s, kind)
	if err != nil {
		return 0, err
	}
	if neg && mag != 0 {
		return 0, convError(kind, s, ErrRange)
	}
	if bits < 64 && mag > uint64(1)<<bits-1 {
		return 0, convError(kind, s, ErrRange)
	}
	return mag, nil
}

// parseMagnitude splits off the sign, detects the base from the prefix and parses
// the remaining digits as an unsigned 64-bit magnitude.
func parseMagnitude(s string, kind Kind) (bool, uint64, error) {
	if s == "" {
		return false, 0, convError(kind, s, ErrEmptyInput)
	}

	body := s
	neg := false
	switch body[0] {
	case '-':
		neg = true
		body = body[1:]
	case '+':
		body = body[1:]
	}

	base := 10
	switch {
	case len(body) >= 2 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X'):
		base = 16
		body = body[2:]
	case len(body) >= 2 && body[0] == '0':
		base = 8
		body = body[1:]
	}
	if body == "" {
		return false, 0, convError(kind, s, ErrSyntax)
	}

	// An explicit base makes ParseUint reject signs, prefixes and underscores.
	mag, err := strconv.ParseUint(body, base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return false, 0, convError(kind, s, ErrRange)
		}
		return false, 0, convError(kind, s, ErrSyntax)
	}
	return neg, mag, nil
}

func convError(kind Kind, s string, err error) error {
	return fmt.Errorf("cannot convert %q to %s: %w", s, kind, err)
}
