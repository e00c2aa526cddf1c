package cfgitems

import "fmt"

// StringCapacity is the size of the buffer backing a string item, terminator
// included: a string value must be shorter than StringCapacity bytes.
const StringCapacity = 128

// GlobalModule is the module of items declared without an explicit module.
// It sorts before every other module name.
const GlobalModule = "_"

// Item is a single registered configuration item.
// String values are kept in an item-owned buffer, never aliased to caller memory.
type Item struct {
	module string
	name   string
	kind   Kind
	value  Value // payload for every kind except KindString
	strbuf [StringCapacity]byte
	strlen int
}

// Module returns the module the item belongs to.
func (it *Item) Module() string { return it.module }

// Name returns the item name.
func (it *Item) Name() string { return it.name }

// Kind returns the declared kind.
func (it *Item) Kind() Kind { return it.kind }

// Key returns "module.name", or just the name for items of the global module.
func (it *Item) Key() string {
	return itemKey(it.module, it.name)
}

func itemKey(module, name string) string {
	if module == GlobalModule {
		return name
	}
	return module + "." + name
}

// Value returns a copy of the current value. It takes no lock: on an item
// obtained from Lookup or Items it must not race with setters.
func (it *Item) Value() Value {
	if it.kind == KindString {
		return StringValue(string(it.strbuf[:it.strlen]))
	}
	return it.value
}

// store replaces the current value. The item is left untouched on error.
func (it *Item) store(v Value) error {
	if v.kind != it.kind {
		return fmt.Errorf("%w: %s is %s, got %s", ErrKindMismatch, it.Key(), it.kind, v.kind)
	}
	if it.kind == KindString {
		if len(v.s) >= StringCapacity {
			return fmt.Errorf("%w: %s accepts fewer than %d bytes, got %d",
				ErrStringTooLong, it.Key(), StringCapacity, len(v.s))
		}
		it.strlen = copy(it.strbuf[:], v.s)
		return nil
	}
	it.value = v
	return nil
}
