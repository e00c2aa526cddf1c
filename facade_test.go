package cfgitems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Declared at package initialization, as client packages do
var (
	facadeVerbose = DefineBool("", "facade_verbose", false)
	facadeName    = DefineString("facade", "name", "default")
	facadeRatio   = DefineDouble("facade", "ratio", 0.5)
	_             = DefineS8("facade", "s8", -1)
	_             = DefineU8("facade", "u8", 1)
	_             = DefineS16("facade", "s16", -1)
	_             = DefineU16("facade", "u16", 1)
	_             = DefineS32("facade", "s32", -1)
	_             = DefineU32("facade", "u32", 1)
	_             = DefineS64("facade", "s64", -1)
	_             = DefineU64("facade", "u64", 1)
)

// TestFacade tests the process-wide registry. Init can succeed only once per
// process, so every facade check lives in this test.
func TestFacade(t *testing.T) {
	assert.Equal(t, GlobalModule, facadeVerbose.Module)
	assert.Equal(t, KindString, facadeName.Kind)
	assert.Equal(t, DoubleValue(0.5), facadeRatio.Default)
	assert.GreaterOrEqual(t, DefaultCatalog().Len(), 11)

	_, err := GetBool("", "facade_verbose")
	assert.ErrorIs(t, err, ErrItemNotFound)

	path := writeFile(t, t.TempDir(), "facade.ini", "facade_verbose = yes\n[facade]\nname = configured\nu16 = 0xffff\n")
	require.NoError(t, Init(path))
	assert.True(t, Default().Initialized())
	assert.ErrorIs(t, Init(""), ErrAlreadyInitialized)

	// "yes" is not a bool token
	verbose, err := GetBool("", "facade_verbose")
	require.NoError(t, err)
	assert.False(t, verbose)
	require.NoError(t, SetBool("", "facade_verbose", true))
	verbose, err = GetBool("", "facade_verbose")
	require.NoError(t, err)
	assert.True(t, verbose)

	name, err := GetString("facade", "name")
	require.NoError(t, err)
	assert.Equal(t, "configured", name)
	require.NoError(t, SetString("facade", "name", "changed"))
	name, err = GetString("facade", "name")
	require.NoError(t, err)
	assert.Equal(t, "changed", name)

	require.NoError(t, SetDouble("facade", "ratio", 0.25))
	ratio, err := GetDouble("facade", "ratio")
	require.NoError(t, err)
	assert.Equal(t, 0.25, ratio)

	require.NoError(t, SetS8("facade", "s8", -8))
	s8, err := GetS8("facade", "s8")
	require.NoError(t, err)
	assert.Equal(t, int8(-8), s8)

	require.NoError(t, SetU8("facade", "u8", 8))
	u8, err := GetU8("facade", "u8")
	require.NoError(t, err)
	assert.Equal(t, uint8(8), u8)

	require.NoError(t, SetS16("facade", "s16", -16))
	s16, err := GetS16("facade", "s16")
	require.NoError(t, err)
	assert.Equal(t, int16(-16), s16)

	u16, err := GetU16("facade", "u16")
	require.NoError(t, err)
	assert.Equal(t, uint16(0xffff), u16)
	require.NoError(t, SetU16("facade", "u16", 16))
	u16, err = GetU16("facade", "u16")
	require.NoError(t, err)
	assert.Equal(t, uint16(16), u16)

	require.NoError(t, SetS32("facade", "s32", -32))
	s32, err := GetS32("facade", "s32")
	require.NoError(t, err)
	assert.Equal(t, int32(-32), s32)

	require.NoError(t, SetU32("facade", "u32", 32))
	u32, err := GetU32("facade", "u32")
	require.NoError(t, err)
	assert.Equal(t, uint32(32), u32)

	require.NoError(t, SetS64("facade", "s64", -64))
	s64, err := GetS64("facade", "s64")
	require.NoError(t, err)
	assert.Equal(t, int64(-64), s64)

	require.NoError(t, SetU64("facade", "u64", 64))
	u64, err := GetU64("facade", "u64")
	require.NoError(t, err)
	assert.Equal(t, uint64(64), u64)

	_, err = GetS8("facade", "u8")
	assert.ErrorIs(t, err, ErrKindMismatch)
}
