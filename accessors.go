package cfgitems

import "fmt"

// get reads an item's value, failing when the item is missing or declared with another kind.
func (r *Registry) get(module, name string, kind Kind) (Value, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	it := r.find(module, name)
	if it == nil {
		return Value{}, notFound(module, name)
	}
	if it.kind != kind {
		return Value{}, fmt.Errorf("%w: %s is %s, requested %s", ErrKindMismatch, it.Key(), it.kind, kind)
	}
	return it.Value(), nil
}

// set replaces an item's value; on error the previous value is kept.
func (r *Registry) set(module, name string, v Value) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	it := r.find(module, name)
	if it == nil {
		return notFound(module, name)
	}
	return it.store(v)
}

// Get returns the current value of an item regardless of its kind.
func (r *Registry) Get(module, name string) (Value, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	it := r.find(module, name)
	if it == nil {
		return Value{}, false
	}
	return it.Value(), true
}

// Set replaces the value of an item. The value kind must match the declared kind.
func (r *Registry) Set(module, name string, v Value) error {
	return r.set(module, name, v)
}

// SetText converts text with the converter of the item's kind and stores the result.
func (r *Registry) SetText(module, name, text string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	it := r.find(module, name)
	if it == nil {
		return notFound(module, name)
	}
	v, err := Convert(it.kind, text)
	if err != nil {
		return fmt.Errorf("%s: %w", it.Key(), err)
	}
	return it.store(v)
}

func notFound(module, name string) error {
	if module == "" {
		module = GlobalModule
	}
	return fmt.Errorf("%w: %s.%s", ErrItemNotFound, module, name)
}

// Bool returns the value of a bool item.
func (r *Registry) Bool(module, name string) (bool, error) {
	v, err := r.get(module, name, KindBool)
	if err != nil {
		return false, err
	}
	return v.b, nil
}

// SetBool replaces the value of a bool item.
func (r *Registry) SetBool(module, name string, value bool) error {
	return r.set(module, name, BoolValue(value))
}

// String returns the value of a string item.
func (r *Registry) String(module, name string) (string, error) {
	v, err := r.get(module, name, KindString)
	if err != nil {
		return "", err
	}
	return v.s, nil
}

// SetString copies value into the item's buffer. Values of StringCapacity bytes
// or more are rejected with ErrStringTooLong and the previous value is kept.
func (r *Registry) SetString(module, name string, value string) error {
	return r.set(module, name, StringValue(value))
}

// Double returns the value of a double item.
func (r *Registry) Double(module, name string) (float64, error) {
	v, err := r.get(module, name, KindDouble)
	if err != nil {
		return 0, err
	}
	return v.f, nil
}

// SetDouble replaces the value of a double item.
func (r *Registry) SetDouble(module, name string, value float64) error {
	return r.set(module, name, DoubleValue(value))
}

// S8 returns the value of an s8 item.
func (r *Registry) S8(module, name string) (int8, error) {
	v, err := r.get(module, name, KindS8)
	if err != nil {
		return 0, err
	}
	return int8(v.i), nil
}

// SetS8 replaces the value of an s8 item.
func (r *Registry) SetS8(module, name string, value int8) error {
	return r.set(module, name, S8Value(value))
}

// U8 returns the value of a u8 item.
func (r *Registry) U8(module, name string) (uint8, error) {
	v, err := r.get(module, name, KindU8)
	if err != nil {
		return 0, err
	}
	return uint8(v.u), nil
}

// SetU8 replaces the value of a u8 item.
func (r *Registry) SetU8(module, name string, value uint8) error {
	return r.set(module, name, U8Value(value))
}

// S16 returns the value of an s16 item.
func (r *Registry) S16(module, name string) (int16, error) {
	v, err := r.get(module, name, KindS16)
	if err != nil {
		return 0, err
	}
	return int16(v.i), nil
}

// SetS16 replaces the value of an s16 item.
func (r *Registry) SetS16(module, name string, value int16) error {
	return r.set(module, name, S16Value(value))
}

// U16 returns the value of a u16 item.
func (r *Registry) U16(module, name string) (uint16, error) {
	v, err := r.get(module, name, KindU16)
	if err != nil {
		return 0, err
	}
	return uint16(v.u), nil
}

// SetU16 replaces the value of a u16 item.
func (r *Registry) SetU16(module, name string, value uint16) error {
	return r.set(module, name, U16Value(value))
}

// S32 returns the value of an s32 item.
func (r *Registry) S32(module, name string) (int32, error) {
	v, err := r.get(module, name, KindS32)
	if err != nil {
		return 0, err
	}
	return int32(v.i), nil
}

// SetS32 replaces the value of an s32 item.
func (r *Registry) SetS32(module, name string, value int32) error {
	return r.set(module, name, S32Value(value))
}

// U32 returns the value of a u32 item.
func (r *Registry) U32(module, name string) (uint32, error) {
	v, err := r.get(module, name, KindU32)
	if err != nil {
		return 0, err
	}
	return uint32(v.u), nil
}

// SetU32 replaces the value of a u32 item.
func (r *Registry) SetU32(module, name string, value uint32) error {
	return r.set(module, name, U32Value(value))
}

// S64 returns the value of an s64 item.
func (r *Registry) S64(module, name string) (int64, error) {
	v, err := r.get(module, name, KindS64)
	if err != nil {
		return 0, err
	}
	return v.i, nil
}

// SetS64 replaces the value of an s64 item.
func (r *Registry) SetS64(module, name string, value int64) error {
	return r.set(module, name, S64Value(value))
}

// U64 returns the value of a u64 item.
func (r *Registry) U64(module, name string) (uint64, error) {
	v, err := r.get(module, name, KindU64)
	if err != nil {
		return 0, err
	}
	return v.u, nil
}

// SetU64 replaces the value of a u64 item.
func (r *Registry) SetU64(module, name string, value uint64) error {
	return r.set(module, name, U64Value(value))
}
