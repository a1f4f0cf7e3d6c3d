// Package table implements the storage shared by every typeset variant: a
// map from a static type's identity to the single value stored for it.
//
// Generic operations are package-level functions because Go methods cannot
// declare type parameters. The variant packages wrap them, adding only the
// constraint on T.
package table

import (
	"iter"
	"log/slog"
	"maps"
	"reflect"
	"slices"
	"unsafe"
)

// holder owns one heap cell of the type it was created from. The cell is
// only ever reinterpreted as that type; see cast.
type holder struct {
	typ reflect.Type
	ptr unsafe.Pointer
}

// Table maps type identities to holders. The zero value is an empty table
// ready for use. A Table is not safe for concurrent use.
type Table struct {
	entries map[reflect.Type]holder
}

// Init prepares t according to opts, discarding any stored values.
func (t *Table) Init(opts ...Option) {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	t.entries = make(map[reflect.Type]holder, cfg.Capacity)
}

func (t *Table) lazyInit() {
	if t.entries == nil {
		t.entries = make(map[reflect.Type]holder)
	}
}

// Len returns the number of distinct types stored.
func (t *Table) Len() int {
	return len(t.entries)
}

// Clear drops every stored value.
func (t *Table) Clear() {
	clear(t.entries)
}

// ContainsID reports whether a value is stored under id.
func (t *Table) ContainsID(id TypeID) bool {
	if id.rtype == nil {
		return false
	}
	_, ok := t.entries[id.rtype]
	return ok
}

// TypeIDs yields the identity of every stored type in unspecified order.
// The sequence may be ranged over repeatedly; t must not be modified while
// a range over it is in progress.
func (t *Table) TypeIDs() iter.Seq[TypeID] {
	return func(yield func(TypeID) bool) {
		for rt := range t.entries {
			if !yield(TypeID{rtype: rt}) {
				return
			}
		}
	}
}

// names yields the Go syntax name of every stored type.
func (t *Table) names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for rt := range maps.Keys(t.entries) {
			if !yield(rt.String()) {
				return
			}
		}
	}
}

// Take moves every entry of t into a new table and leaves t empty.
func (t *Table) Take() Table {
	out := Table{entries: t.entries}
	t.entries = nil
	return out
}

// LogValue renders t for log/slog under the given capability label. Type
// names are included in debug builds only.
func (t *Table) LogValue(capability Capability) slog.Value {
	attrs := []slog.Attr{
		slog.String("capability", capability.String()),
		slog.Int("len", t.Len()),
	}
	if Debug {
		attrs = append(attrs, slog.Any("types", slices.Sorted(t.names())))
	}
	return slog.GroupValue(attrs...)
}

// ---------------------------------------------------------------------------
// Generic operations
// ---------------------------------------------------------------------------

func wrap[T any](rt reflect.Type, v T) holder {
	cell := new(T)
	*cell = v
	return holder{typ: rt, ptr: unsafe.Pointer(cell)}
}

// cast reinterprets h's cell as *T. Callers only reach a holder through the
// key reflect.TypeFor[T](), and holders are only created under their own
// type's key, so the representation always matches.
func cast[T any](h holder) *T {
	assertType(h.typ, reflect.TypeFor[T]())
	return (*T)(h.ptr)
}

// Insert stores v under T's identity. If a value of T was already present it
// is returned with replaced set to true.
func Insert[T any](t *Table, v T) (prev T, replaced bool) {
	t.lazyInit()
	rt := reflect.TypeFor[T]()
	old, replaced := t.entries[rt]
	t.entries[rt] = wrap(rt, v)
	if replaced {
		prev = *cast[T](old)
	}
	return prev, replaced
}

// Get returns a copy of the value stored for T.
func Get[T any](t *Table) (T, bool) {
	p, ok := GetMut[T](t)
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}

// GetMut returns a pointer to the value stored for T. The pointer stays
// valid until the entry is removed, replaced or cleared.
func GetMut[T any](t *Table) (*T, bool) {
	h, ok := t.entries[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return cast[T](h), true
}

// Remove evicts the value stored for T and returns it.
func Remove[T any](t *Table) (T, bool) {
	rt := reflect.TypeFor[T]()
	h, ok := t.entries[rt]
	if !ok {
		var zero T
		return zero, false
	}
	delete(t.entries, rt)
	return *cast[T](h), true
}

// Contains reports whether a value of T is stored.
func Contains[T any](t *Table) bool {
	_, ok := t.entries[reflect.TypeFor[T]()]
	return ok
}

// GetOrInsert returns a pointer to the value stored for T, storing def first
// if there is none.
func GetOrInsert[T any](t *Table, def T) *T {
	return GetOrInsertWith(t, func() T { return def })
}

// GetOrInsertWith returns a pointer to the value stored for T. If there is
// none, f is called once and its result is stored. A T stored by f itself
// takes precedence and f's result is discarded.
func GetOrInsertWith[T any](t *Table, f func() T) *T {
	rt := reflect.TypeFor[T]()
	if h, ok := t.entries[rt]; ok {
		return cast[T](h)
	}
	v := f()
	if h, ok := t.entries[rt]; ok {
		return cast[T](h)
	}
	t.lazyInit()
	h := wrap(rt, v)
	t.entries[rt] = h
	return cast[T](h)
}
