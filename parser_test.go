package cfgitems

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseText(t *testing.T, text string) *Registry {
	t.Helper()
	r := newTestRegistry(t)
	require.NoError(t, r.ParseReader(strings.NewReader(text)))
	return r
}

// TestParseSections tests that section headers select the module of later assignments
func TestParseSections(t *testing.T) {
	r := parseText(t, "[submodule]\nmultithreaded = off\n")

	v, err := r.Bool("submodule", "multithreaded")
	require.NoError(t, err)
	assert.False(t, v)
	v, err = r.Bool("", "multithreaded")
	require.NoError(t, err)
	assert.False(t, v)

	r = parseText(t, strings.Join([]string{
		"multithreaded = on",
		"s8 = -12",
		"[submodule]",
		"s8=0x7f",
		"[" + GlobalModule + "]",
		"u8\t077",
	}, "\n"))

	v, err = r.Bool("", "multithreaded")
	require.NoError(t, err)
	assert.True(t, v)

	s8, err := r.S8("", "s8")
	require.NoError(t, err)
	assert.Equal(t, int8(-12), s8)
	s8, err = r.S8("submodule", "s8")
	require.NoError(t, err)
	assert.Equal(t, int8(127), s8)

	u8, err := r.U8("", "u8")
	require.NoError(t, err)
	assert.Equal(t, uint8(63), u8)
}

// TestParseLines tests comments, whitespace and token splitting
func TestParseLines(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		module string
		item   string
		want   any
	}{
		{"HashComment", "# speed = 9\n", "", "speed", 1.0},
		{"SemicolonComment", "   ; speed = 9\n", "", "speed", 1.0},
		{"IndentedAssignment", "\t  speed = 9.5  \n", "", "speed", 9.5},
		{"RunsOfSeparators", "speed\t==  = 3\n", "", "speed", 3.0},
		{"NoSpaces", "speed=4", "", "speed", 4.0},
		{"ExtraTokensIgnored", "configuration_file = my file.conf\n", "", "configuration_file", "my"},
		{"CRLF", "[submodule]\r\nspeed = 5\r\n", "submodule", "speed", 5.0},
		{"NameOnly", "speed\n", "", "speed", 1.0},
		{"NameOnlyWithSeparator", "speed =\n", "", "speed", 1.0},
		{"BlankLines", "\n\n   \n\t\nspeed = 6\n", "", "speed", 6.0},
		{"LastAssignmentWins", "speed = 1.5\nspeed = 2.5\n", "", "speed", 2.5},
		{"BadValueKeepsPrevious", "speed = 1.5\nspeed = fast\n", "", "speed", 1.5},
		{"OutOfRangeKeepsDefault", "[submodule]\nu8 = 256\n", "submodule", "u8", uint8(2)},
		{"StringTooLong", "configuration_file = " + strings.Repeat("a", StringCapacity) + "\n", "", "configuration_file", "mystring1"},
		{"UnknownItem", "unknown = 1\nspeed = 7\n", "", "speed", 7.0},
		{"UnknownModule", "[nomodule]\nspeed = 7\n", "", "speed", 1.0},
		{"NoTrailingNewline", "[submodule]\nu32 = 4294967295", "submodule", "u32", uint32(4294967295)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := parseText(t, tt.text)
			v, ok := r.Get(tt.module, tt.item)
			require.True(t, ok)
			assert.Equal(t, tt.want, v.Interface())
		})
	}
}

// TestParseHeaders tests malformed section headers
func TestParseHeaders(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64 // value of submodule.speed
	}{
		{"Valid", "[submodule]\nspeed = 9\n", 9},
		{"Spaced", "  [submodule]  \nspeed = 9\n", 9},
		{"MissingBracket", "[submodule\nspeed = 9\n", 2},
		{"EmptyHeaderKeepsModule", "[submodule]\n[]\nspeed = 9\n", 9},
		{"MalformedKeepsModule", "[submodule]\n[other\nspeed = 9\n", 9},
		{"TooLongKeepsModule", "[submodule]\n[" + strings.Repeat("m", maxModuleLength) + "]\nspeed = 9\n", 9},
		{"Switched", "[submodule]\n[other]\nspeed = 9\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := parseText(t, tt.text)
			v, err := r.Double("submodule", "speed")
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

// TestParseLongLines tests that lines longer than the line buffer are split
func TestParseLongLines(t *testing.T) {
	// The first MaxLineLength-1 bytes are a comment; the remainder is read as its own line
	text := "#" + strings.Repeat(" ", MaxLineLength-2) + "speed = 42\n"
	r := parseText(t, text)
	v, err := r.Double("", "speed")
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)

	// A line that fits is a single comment
	text = "#" + strings.Repeat(" ", MaxLineLength-20) + "speed = 42\n"
	r = parseText(t, text)
	v, err = r.Double("", "speed")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

// TestSplitAssignment tests the name/value tokenizer
func TestSplitAssignment(t *testing.T) {
	tests := []struct {
		line  string
		name  string
		value string
		ok    bool
	}{
		{"a = b", "a", "b", true},
		{"a=b", "a", "b", true},
		{"a\tb", "a", "b", true},
		{"=a = b", "a", "b", true},
		{"a = b c", "a", "b", true},
		{"a = b=c", "a", "b", true},
		{"a", "", "", false},
		{"a = ", "", "", false},
		{"===", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			name, value, ok := splitAssignment(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.value, value)
		})
	}
}

// TestParseFile tests parsing from disk
func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("EmptyPath", func(t *testing.T) {
		r := newTestRegistry(t)
		assert.NoError(t, r.Parse(""))
	})

	t.Run("MissingFile", func(t *testing.T) {
		r := newTestRegistry(t)
		err := r.Parse(dir + "/missing.ini")
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("Directory", func(t *testing.T) {
		r := newTestRegistry(t)
		// Opening a directory succeeds; reading it fails
		assert.Error(t, r.Parse(dir))
	})

	t.Run("Reparse", func(t *testing.T) {
		r := newTestRegistry(t)
		path := writeFile(t, dir, "a.ini", "[submodule]\nmultithreaded = off\ns64 = -9223372036854775808\n")
		require.NoError(t, r.Parse(path))
		require.NoError(t, r.Parse(path))

		v, err := r.S64("submodule", "s64")
		require.NoError(t, err)
		assert.Equal(t, int64(-9223372036854775808), v)
	})
}

// TestParseEndToEnd tests a file mixing valid, commented and malformed lines
func TestParseEndToEnd(t *testing.T) {
	path := writeFile(t, t.TempDir(), "sub.ini", "[sub]\nflag=on\n; a comment\nnot a valid line\n[other]\nflag = on\n")

	c := NewCatalog().Bool("sub", "flag", false)
	r := New(WithLogger(quietLogger()))
	require.NoError(t, r.Init(c.Descriptors(), path))

	v, err := r.Bool("sub", "flag")
	require.NoError(t, err)
	assert.True(t, v)
	assert.Equal(t, 1, r.Len())
}
