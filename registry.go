package cfgitems

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
)

// Registry is the sorted index over all configuration items.
// It is built exactly once by Init; afterwards only values change.
type Registry struct {
	index       []*Item // sorted by compareKeys
	initialized bool
	logger      *slog.Logger
	options     LoadOptions
	mutex       sync.RWMutex
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for diagnostics. Nil keeps the default.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithLoadOptions sets the options used by Load.
func WithLoadOptions(opts LoadOptions) Option {
	return func(r *Registry) {
		r.options = opts
	}
}

// New creates an uninitialized Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		logger:  slog.Default(),
		options: DefaultLoadOptions(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Init builds the index from descs and, if path is not empty, applies the
// configuration file at path. The result of parsing the file is the result of Init.
//
// Init succeeds at most once. A later call returns ErrAlreadyInitialized and leaves
// the registry untouched, as does a failure while validating descs.
func (r *Registry) Init(descs []Descriptor, path string) error {
	r.mutex.Lock()
	if r.initialized {
		r.mutex.Unlock()
		return ErrAlreadyInitialized
	}

	index, err := buildIndex(descs)
	if err != nil {
		r.mutex.Unlock()
		return err
	}
	r.index = index
	r.initialized = true
	r.mutex.Unlock()

	r.logger.Debug("configuration registry initialized", "items", len(index))

	return r.Parse(path)
}

// SetLogger replaces the logger used for diagnostics. Nil is ignored.
// It is meant to be called before Init, like WithLogger.
func (r *Registry) SetLogger(logger *slog.Logger) {
	if logger == nil {
		return
	}
	r.mutex.Lock()
	r.logger = logger
	r.mutex.Unlock()
}

// Initialized reports whether Init has succeeded.
func (r *Registry) Initialized() bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.initialized
}

// buildIndex turns descriptors into items and sorts them by ordered insertion.
// Sentinel descriptors are skipped.
func buildIndex(descs []Descriptor) ([]*Item, error) {
	n := 0
	for _, d := range descs {
		if !d.IsSentinel() {
			n++
		}
	}

	storage := make([]Item, n)
	index := make([]*Item, n)
	count := 0
	for _, d := range descs {
		if d.IsSentinel() {
			continue
		}
		it := &storage[count]
		if err := newItem(it, d); err != nil {
			return nil, err
		}
		if err := insertSorted(index, count, it); err != nil {
			return nil, err
		}
		count++
	}
	return index, nil
}

func newItem(it *Item, d Descriptor) error {
	if !d.Kind.Valid() {
		return fmt.Errorf("%w: %s.%s has kind %s", ErrInvalidDescriptor, d.Module, d.Name, d.Kind)
	}
	if d.Name == "" {
		return fmt.Errorf("%w: empty item name in module %s", ErrInvalidDescriptor, d.Module)
	}

	it.module = d.Module
	it.name = d.Name
	it.kind = d.Kind

	def := d.Default
	if def.Kind() == KindUndefined {
		def = zeroValue(d.Kind)
	}
	if err := it.store(def); err != nil {
		return fmt.Errorf("%w: default value: %w", ErrInvalidDescriptor, err)
	}
	return nil
}

// insertSorted inserts it into the sorted prefix index[:n], shifting the tail right.
func insertSorted(index []*Item, n int, it *Item) error {
	i := 0
	for ; i < n; i++ {
		c := compareKeys(it.module, it.name, index[i].module, index[i].name)
		if c == 0 {
			return fmt.Errorf("%w: %s", ErrDuplicateItem, it.Key())
		}
		if c < 0 {
			break
		}
	}
	copy(index[i+1:n+1], index[i:n])
	index[i] = it
	return nil
}

// compareKeys orders items by module, then name. GlobalModule sorts first.
func compareKeys(lmodule, lname, rmodule, rname string) int {
	if lmodule != rmodule {
		switch {
		case lmodule == GlobalModule:
			return -1
		case rmodule == GlobalModule:
			return 1
		}
		return strings.Compare(lmodule, rmodule)
	}
	return strings.Compare(lname, rname)
}

// find binary-searches the index. Callers must hold the mutex.
func (r *Registry) find(module, name string) *Item {
	if name == "" || len(r.index) == 0 {
		return nil
	}
	if module == "" {
		module = GlobalModule
	}

	lo, hi := 0, len(r.index)
	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		it := r.index[m]
		switch c := compareKeys(it.module, it.name, module, name); {
		case c < 0:
			lo = m + 1
		case c > 0:
			hi = m
		default:
			return it
		}
	}
	return nil
}

// Lookup returns the item registered under (module, name).
// An empty module means GlobalModule. See Items for the rules on reading
// the returned item's value.
func (r *Registry) Lookup(module, name string) (*Item, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	it := r.find(module, name)
	return it, it != nil
}

// Has reports whether (module, name) is registered.
func (r *Registry) Has(module, name string) bool {
	_, ok := r.Lookup(module, name)
	return ok
}

// Len returns the number of registered items.
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.index)
}

// Items returns the registered items in index order.
// Module, name and kind never change after Init; reading Item.Value on the
// returned pointers is not synchronized with setters. Use Get or the typed
// accessors when values may change concurrently.
func (r *Registry) Items() []*Item {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	out := make([]*Item, len(r.index))
	copy(out, r.index)
	return out
}

// itemState is a copy of one item taken under the read lock.
type itemState struct {
	module string
	name   string
	kind   Kind
	value  Value
}

func (s itemState) key() string {
	return itemKey(s.module, s.name)
}

// snapshot copies every item in index order.
func (r *Registry) snapshot() []itemState {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return copyStates(r.index)
}

// moduleSnapshot copies the items of one module in name order.
func (r *Registry) moduleSnapshot(module string) []itemState {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	start, end := r.moduleRange(module)
	return copyStates(r.index[start:end])
}

func copyStates(items []*Item) []itemState {
	out := make([]itemState, len(items))
	for i, it := range items {
		out[i] = itemState{module: it.module, name: it.name, kind: it.kind, value: it.Value()}
	}
	return out
}

// Modules returns the distinct module names in index order.
func (r *Registry) Modules() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var modules []string
	for _, it := range r.index {
		if len(modules) == 0 || modules[len(modules)-1] != it.module {
			modules = append(modules, it.module)
		}
	}
	return modules
}

// ModuleItems returns the items of one module in name order.
func (r *Registry) ModuleItems(module string) []*Item {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	start, end := r.moduleRange(module)
	out := make([]*Item, end-start)
	copy(out, r.index[start:end])
	return out
}

// moduleRange returns the index bounds of one module. Callers must hold the mutex.
func (r *Registry) moduleRange(module string) (int, int) {
	if module == "" {
		module = GlobalModule
	}
	start := sort.Search(len(r.index), func(i int) bool {
		return compareKeys(r.index[i].module, "", module, "") >= 0
	})
	end := start
	for end < len(r.index) && r.index[end].module == module {
		end++
	}
	return start, end
}
