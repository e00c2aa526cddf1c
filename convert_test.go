package cfgitems

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestToBool tests the boolean token set
func TestToBool(t *testing.T) {
	for _, s := range []string{"1", "true", "TRUE", "True", "on", "ON", "oN"} {
		v, err := ToBool(s)
		require.NoError(t, err, s)
		assert.True(t, v, s)
	}
	for _, s := range []string{"0", "false", "FALSE", "off", "Off"} {
		v, err := ToBool(s)
		require.NoError(t, err, s)
		assert.False(t, v, s)
	}
	for _, s := range []string{"yes", "no", "t", "f", "2", " true", "true ", "onn"} {
		_, err := ToBool(s)
		assert.ErrorIs(t, err, ErrSyntax, s)
	}

	_, err := ToBool("")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

// TestIntegerBoundaries tests min, max and one-past values for every integer kind
func TestIntegerBoundaries(t *testing.T) {
	tests := []struct {
		kind     Kind
		min, max string
		below    string
		above    string
	}{
		{KindS8, "-128", "127", "-129", "128"},
		{KindU8, "0", "255", "-1", "256"},
		{KindS16, "-32768", "32767", "-32769", "32768"},
		{KindU16, "0", "65535", "-1", "65536"},
		{KindS32, "-2147483648", "2147483647", "-2147483649", "2147483648"},
		{KindU32, "0", "4294967295", "-1", "4294967296"},
		{KindS64, "-9223372036854775808", "9223372036854775807", "-9223372036854775809", "9223372036854775808"},
		{KindU64, "0", "18446744073709551615", "-1", "18446744073709551616"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			v, err := Convert(tt.kind, tt.min)
			require.NoError(t, err)
			assert.Equal(t, tt.min, v.String())

			v, err = Convert(tt.kind, tt.max)
			require.NoError(t, err)
			assert.Equal(t, tt.max, v.String())

			_, err = Convert(tt.kind, tt.below)
			assert.ErrorIs(t, err, ErrRange)

			_, err = Convert(tt.kind, tt.above)
			assert.ErrorIs(t, err, ErrRange)
		})
	}
}

// TestIntegerSyntax tests base detection, signs and rejected forms
func TestIntegerSyntax(t *testing.T) {
	valid := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"-0", 0},
		{"+42", 42},
		{"-42", -42},
		{"0x7f", 127},
		{"0X7F", 127},
		{"-0x80", -128},
		{"010", 8},
		{"-010", -8},
		{"00", 0},
	}
	for _, tt := range valid {
		v, err := ToS8(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, int8(tt.want), v, tt.in)
	}

	invalid := []string{"12abc", "abc", "1.5", "0x", "-", "+", "08", "0b101", "0o17", "1_000", " 1", "1 ", "--1", "+-1", "0x-1"}
	for _, s := range invalid {
		_, err := ToS32(s)
		assert.ErrorIs(t, err, ErrSyntax, s)
	}

	for _, kind := range []Kind{KindS8, KindU8, KindS16, KindU16, KindS32, KindU32, KindS64, KindU64} {
		_, err := Convert(kind, "")
		assert.ErrorIs(t, err, ErrEmptyInput, kind.String())
	}
}

// TestUnsignedConverters tests the unsigned-specific rules
func TestUnsignedConverters(t *testing.T) {
	u8, err := ToU8("0xff")
	require.NoError(t, err)
	assert.Equal(t, uint8(255), u8)

	u16, err := ToU16("+0177777")
	require.NoError(t, err)
	assert.Equal(t, uint16(65535), u16)

	u32, err := ToU32("-0")
	require.NoError(t, err)
	assert.Equal(t, uint32(0), u32)

	u64, err := ToU64("0xFFFFFFFFFFFFFFFF")
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), u64)

	_, err = ToU64("-1")
	assert.ErrorIs(t, err, ErrRange)

	_, err = ToU64("0x10000000000000000")
	assert.ErrorIs(t, err, ErrRange)
}

// TestToDouble tests floating point parsing
func TestToDouble(t *testing.T) {
	valid := map[string]float64{
		"0":        0,
		"-0.5":     -0.5,
		"1e3":      1000,
		"+2.25":    2.25,
		".5":       0.5,
		"0x1p-2":   0.25,
		"0x10":     16,
		"-0X1.8":   -1.5,
		"0e-400":   0,
		"0x0":      0,
		"4.9e-324": 5e-324,
		"1E-2":     0.01,
		"3.14159":  3.14159,
	}
	for in, want := range valid {
		v, err := ToDouble(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, v, in)
	}

	v, err := ToDouble("inf")
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	_, err = ToDouble("1e400")
	assert.ErrorIs(t, err, ErrRange)
	_, err = ToDouble("-1e400")
	assert.ErrorIs(t, err, ErrRange)

	// Non-zero mantissas that underflow to zero
	for _, s := range []string{"1e-400", "-2.5e-999", "0x1p-1100"} {
		_, err := ToDouble(s)
		assert.ErrorIs(t, err, ErrRange, s)
	}

	for _, s := range []string{"12abc", "abc", "1.0.0", "1_000.5", " 1.5", "1.5 ", "0x", "0xg", "0x1p"} {
		_, err := ToDouble(s)
		assert.ErrorIs(t, err, ErrSyntax, s)
	}

	_, err = ToDouble("")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

// TestToString tests the capacity rule
func TestToString(t *testing.T) {
	s, err := ToString(strings.Repeat("a", StringCapacity-1))
	require.NoError(t, err)
	assert.Len(t, s, StringCapacity-1)

	_, err = ToString(strings.Repeat("a", StringCapacity))
	assert.ErrorIs(t, err, ErrStringTooLong)

	_, err = ToString("")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

// TestConvert tests dispatch by kind
func TestConvert(t *testing.T) {
	v, err := Convert(KindBool, "on")
	require.NoError(t, err)
	assert.Equal(t, BoolValue(true), v)

	v, err = Convert(KindU16, "0x10")
	require.NoError(t, err)
	assert.Equal(t, U16Value(16), v)
	assert.Equal(t, uint16(16), v.Interface())

	v, err = Convert(KindString, "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", v.Interface())

	_, err = Convert(KindUndefined, "1")
	assert.ErrorIs(t, err, ErrKindMismatch)

	// Canonical text converts back to the same value
	for _, in := range []Value{BoolValue(false), DoubleValue(-1.5e10), S16Value(-300), U64Value(math.MaxUint64)} {
		out, err := Convert(in.Kind(), in.String())
		require.NoError(t, err)
		assert.Equal(t, in, out)
	}
}
