package cfgitems

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Descriptor is the raw declaration of one item before the registry indexes it.
// A Descriptor with an empty Module is a sentinel and is skipped by Init.
// A zero Default means the zero value of Kind.
type Descriptor struct {
	Module  string
	Kind    Kind
	Name    string
	Default Value
}

// IsSentinel reports whether d is a boundary marker rather than an item.
func (d Descriptor) IsSentinel() bool {
	return d.Module == ""
}

// Catalog collects item declarations from independent modules.
// Declarations are order-independent; the registry sorts them when it builds its index.
type Catalog struct {
	descriptors []Descriptor
	mutex       sync.Mutex
}

// NewCatalog creates an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Declare appends a descriptor. An empty module is replaced by GlobalModule.
func (c *Catalog) Declare(d Descriptor) *Catalog {
	if d.Module == "" {
		d.Module = GlobalModule
	}
	c.mutex.Lock()
	c.descriptors = append(c.descriptors, d)
	c.mutex.Unlock()
	return c
}

// Bool declares a bool item with a default value.
func (c *Catalog) Bool(module, name string, def bool) *Catalog {
	return c.Declare(Descriptor{Module: module, Kind: KindBool, Name: name, Default: BoolValue(def)})
}

// String declares a string item with a default value.
func (c *Catalog) String(module, name string, def string) *Catalog {
	return c.Declare(Descriptor{Module: module, Kind: KindString, Name: name, Default: StringValue(def)})
}

// Double declares a double item with a default value.
func (c *Catalog) Double(module, name string, def float64) *Catalog {
	return c.Declare(Descriptor{Module: module, Kind: KindDouble, Name: name, Default: DoubleValue(def)})
}

// S8 declares an s8 item with a default value.
func (c *Catalog) S8(module, name string, def int8) *Catalog {
	return c.Declare(Descriptor{Module: module, Kind: KindS8, Name: name, Default: S8Value(def)})
}

// U8 declares a u8 item with a default value.
func (c *Catalog) U8(module, name string, def uint8) *Catalog {
	return c.Declare(Descriptor{Module: module, Kind: KindU8, Name: name, Default: U8Value(def)})
}

// S16 declares an s16 item with a default value.
func (c *Catalog) S16(module, name string, def int16) *Catalog {
	return c.Declare(Descriptor{Module: module, Kind: KindS16, Name: name, Default: S16Value(def)})
}

// U16 declares a u16 item with a default value.
func (c *Catalog) U16(module, name string, def uint16) *Catalog {
	return c.Declare(Descriptor{Module: module, Kind: KindU16, Name: name, Default: U16Value(def)})
}

// S32 declares an s32 item with a default value.
func (c *Catalog) S32(module, name string, def int32) *Catalog {
	return c.Declare(Descriptor{Module: module, Kind: KindS32, Name: name, Default: S32Value(def)})
}

// U32 declares a u32 item with a default value.
func (c *Catalog) U32(module, name string, def uint32) *Catalog {
	return c.Declare(Descriptor{Module: module, Kind: KindU32, Name: name, Default: U32Value(def)})
}

// S64 declares an s64 item with a default value.
func (c *Catalog) S64(module, name string, def int64) *Catalog {
	return c.Declare(Descriptor{Module: module, Kind: KindS64, Name: name, Default: S64Value(def)})
}

// U64 declares a u64 item with a default value.
func (c *Catalog) U64(module, name string, def uint64) *Catalog {
	return c.Declare(Descriptor{Module: module, Kind: KindU64, Name: name, Default: U64Value(def)})
}

// Merge appends the declarations of other catalogs.
func (c *Catalog) Merge(others ...*Catalog) *Catalog {
	for _, o := range others {
		if o == nil || o == c {
			continue
		}
		for _, d := range o.declared() {
			c.Declare(d)
		}
	}
	return c
}

// Len returns the number of declared items.
func (c *Catalog) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.descriptors)
}

// Descriptors returns the declared items bounded by two sentinel descriptors.
func (c *Catalog) Descriptors() []Descriptor {
	declared := c.declared()
	out := make([]Descriptor, 0, len(declared)+2)
	out = append(out, Descriptor{})
	out = append(out, declared...)
	out = append(out, Descriptor{})
	return out
}

func (c *Catalog) declared() []Descriptor {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	out := make([]Descriptor, len(c.descriptors))
	copy(out, c.descriptors)
	return out
}

// DeclareStruct declares one item per exported field of a struct, using the
// field values as defaults. The item name comes from the `cfg` tag, or the
// lower-cased field name; a tag of "-" skips the field.
func (c *Catalog) DeclareStruct(module string, structWithDefaults any) error {
	v := reflect.ValueOf(structWithDefaults)

	// Handle pointer or direct struct value
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return fmt.Errorf("DeclareStruct requires a non-nil struct pointer or value")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("DeclareStruct requires a struct or struct pointer, got %T", structWithDefaults)
	}

	t := v.Type()
	var errs []string
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("cfg")
		if tag == "-" {
			continue
		}
		name := strings.ToLower(field.Name)
		if key, _, _ := strings.Cut(tag, ","); key != "" {
			name = key
		}

		def, ok := reflectValue(v.Field(i))
		if !ok {
			errs = append(errs, fmt.Sprintf("field %s: unsupported type %s", field.Name, field.Type))
			continue
		}
		c.Declare(Descriptor{Module: module, Kind: def.Kind(), Name: name, Default: def})
	}

	if len(errs) > 0 {
		return fmt.Errorf("failed to declare %d field(s): %s", len(errs), strings.Join(errs, "; "))
	}
	return nil
}

// reflectValue maps a scalar struct field onto a tagged Value.
// int and uint map to the 64-bit kinds.
func reflectValue(f reflect.Value) (Value, bool) {
	switch f.Kind() {
	case reflect.Bool:
		return BoolValue(f.Bool()), true
	case reflect.String:
		return StringValue(f.String()), true
	case reflect.Float32, reflect.Float64:
		return DoubleValue(f.Float()), true
	case reflect.Int8:
		return S8Value(int8(f.Int())), true
	case reflect.Int16:
		return S16Value(int16(f.Int())), true
	case reflect.Int32:
		return S32Value(int32(f.Int())), true
	case reflect.Int, reflect.Int64:
		return S64Value(f.Int()), true
	case reflect.Uint8:
		return U8Value(uint8(f.Uint())), true
	case reflect.Uint16:
		return U16Value(uint16(f.Uint())), true
	case reflect.Uint32:
		return U32Value(uint32(f.Uint())), true
	case reflect.Uint, reflect.Uint64:
		return U64Value(f.Uint()), true
	}
	return Value{}, false
}
