package cfgitems

// Package-level facade over one process-wide catalog and registry.
// Items are declared from package variable initializers, which run before main:
//
//	var _ = cfgitems.DefineBool("net", "ipv6", false)
//
// and main calls Init once.

var (
	defaultCatalog  = NewCatalog()
	defaultRegistry = New()
)

// Default returns the process-wide registry used by the package-level functions.
func Default() *Registry {
	return defaultRegistry
}

// DefaultCatalog returns the catalog filled by the Define functions.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// Init builds the process-wide registry from all Define calls made so far and
// applies the INI file at path, if any. Only the first call can succeed.
func Init(path string) error {
	return defaultRegistry.Init(defaultCatalog.Descriptors(), path)
}

// define records d in the default catalog with its module normalized.
func define(d Descriptor) Descriptor {
	if d.Module == "" {
		d.Module = GlobalModule
	}
	defaultCatalog.Declare(d)
	return d
}

// DefineBool declares a bool item in the default catalog and returns its descriptor.
func DefineBool(module, name string, def bool) Descriptor {
	return define(Descriptor{Module: module, Kind: KindBool, Name: name, Default: BoolValue(def)})
}

// GetBool returns the value of a bool item of the default registry.
func GetBool(module, name string) (bool, error) {
	return defaultRegistry.Bool(module, name)
}

// SetBool replaces the value of a bool item of the default registry.
func SetBool(module, name string, value bool) error {
	return defaultRegistry.SetBool(module, name, value)
}

// DefineString declares a string item in the default catalog and returns its descriptor.
func DefineString(module, name string, def string) Descriptor {
	return define(Descriptor{Module: module, Kind: KindString, Name: name, Default: StringValue(def)})
}

// GetString returns the value of a string item of the default registry.
func GetString(module, name string) (string, error) {
	return defaultRegistry.String(module, name)
}

// SetString replaces the value of a string item of the default registry.
func SetString(module, name string, value string) error {
	return defaultRegistry.SetString(module, name, value)
}

// DefineDouble declares a double item in the default catalog and returns its descriptor.
func DefineDouble(module, name string, def float64) Descriptor {
	return define(Descriptor{Module: module, Kind: KindDouble, Name: name, Default: DoubleValue(def)})
}

// GetDouble returns the value of a double item of the default registry.
func GetDouble(module, name string) (float64, error) {
	return defaultRegistry.Double(module, name)
}

// SetDouble replaces the value of a double item of the default registry.
func SetDouble(module, name string, value float64) error {
	return defaultRegistry.SetDouble(module, name, value)
}

// DefineS8 declares an s8 item in the default catalog and returns its descriptor.
func DefineS8(module, name string, def int8) Descriptor {
	return define(Descriptor{Module: module, Kind: KindS8, Name: name, Default: S8Value(def)})
}

// GetS8 returns the value of an s8 item of the default registry.
func GetS8(module, name string) (int8, error) {
	return defaultRegistry.S8(module, name)
}

// SetS8 replaces the value of an s8 item of the default registry.
func SetS8(module, name string, value int8) error {
	return defaultRegistry.SetS8(module, name, value)
}

// DefineU8 declares a u8 item in the default catalog and returns its descriptor.
func DefineU8(module, name string, def uint8) Descriptor {
	return define(Descriptor{Module: module, Kind: KindU8, Name: name, Default: U8Value(def)})
}

// GetU8 returns the value of a u8 item of the default registry.
func GetU8(module, name string) (uint8, error) {
	return defaultRegistry.U8(module, name)
}

// SetU8 replaces the value of a u8 item of the default registry.
func SetU8(module, name string, value uint8) error {
	return defaultRegistry.SetU8(module, name, value)
}

// DefineS16 declares an s16 item in the default catalog and returns its descriptor.
func DefineS16(module, name string, def int16) Descriptor {
	return define(Descriptor{Module: module, Kind: KindS16, Name: name, Default: S16Value(def)})
}

// GetS16 returns the value of an s16 item of the default registry.
func GetS16(module, name string) (int16, error) {
	return defaultRegistry.S16(module, name)
}

// SetS16 replaces the value of an s16 item of the default registry.
func SetS16(module, name string, value int16) error {
	return defaultRegistry.SetS16(module, name, value)
}

// DefineU16 declares a u16 item in the default catalog and returns its descriptor.
func DefineU16(module, name string, def uint16) Descriptor {
	return define(Descriptor{Module: module, Kind: KindU16, Name: name, Default: U16Value(def)})
}

// GetU16 returns the value of a u16 item of the default registry.
func GetU16(module, name string) (uint16, error) {
	return defaultRegistry.U16(module, name)
}

// SetU16 replaces the value of a u16 item of the default registry.
func SetU16(module, name string, value uint16) error {
	return defaultRegistry.SetU16(module, name, value)
}

// DefineS32 declares an s32 item in the default catalog and returns its descriptor.
func DefineS32(module, name string, def int32) Descriptor {
	return define(Descriptor{Module: module, Kind: KindS32, Name: name, Default: S32Value(def)})
}

// GetS32 returns the value of an s32 item of the default registry.
func GetS32(module, name string) (int32, error) {
	return defaultRegistry.S32(module, name)
}

// SetS32 replaces the value of an s32 item of the default registry.
func SetS32(module, name string, value int32) error {
	return defaultRegistry.SetS32(module, name, value)
}

// DefineU32 declares a u32 item in the default catalog and returns its descriptor.
func DefineU32(module, name string, def uint32) Descriptor {
	return define(Descriptor{Module: module, Kind: KindU32, Name: name, Default: U32Value(def)})
}

// GetU32 returns the value of a u32 item of the default registry.
func GetU32(module, name string) (uint32, error) {
	return defaultRegistry.U32(module, name)
}

// SetU32 replaces the value of a u32 item of the default registry.
func SetU32(module, name string, value uint32) error {
	return defaultRegistry.SetU32(module, name, value)
}

// DefineS64 declares an s64 item in the default catalog and returns its descriptor.
func DefineS64(module, name string, def int64) Descriptor {
	return define(Descriptor{Module: module, Kind: KindS64, Name: name, Default: S64Value(def)})
}

// GetS64 returns the value of an s64 item of the default registry.
func GetS64(module, name string) (int64, error) {
	return defaultRegistry.S64(module, name)
}

// SetS64 replaces the value of an s64 item of the default registry.
func SetS64(module, name string, value int64) error {
	return defaultRegistry.SetS64(module, name, value)
}

// DefineU64 declares a u64 item in the default catalog and returns its descriptor.
func DefineU64(module, name string, def uint64) Descriptor {
	return define(Descriptor{Module: module, Kind: KindU64, Name: name, Default: U64Value(def)})
}

// GetU64 returns the value of a u64 item of the default registry.
func GetU64(module, name string) (uint64, error) {
	return defaultRegistry.U64(module, name)
}

// SetU64 replaces the value of a u64 item of the default registry.
func SetU64(module, name string, value uint64) error {
	return defaultRegistry.SetU64(module, name, value)
}
