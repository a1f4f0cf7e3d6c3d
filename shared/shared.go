// Package shared provides a typeset whose values may be handed to another
// goroutine and read by several goroutines at once.
//
// Only types implementing [Value] are admitted. The set itself never locks:
// concurrent readers are safe while nobody writes, and [Guard] packages the
// read/write locking most callers need.
package shared

import (
	"iter"
	"log/slog"

	"github.com/ARTM2000/typeset"
	"github.com/ARTM2000/typeset/internal/table"
	"github.com/ARTM2000/typeset/send"
)

// Value is implemented by transferable types that are also safe to read from
// several goroutines without exclusive access.
type Value interface {
	send.Value
	ErasedShare()
}

// Marker implements [Value] when embedded.
type Marker struct {
	send.Marker
}

// ErasedShare implements [Value].
func (Marker) ErasedShare() {}

// Set stores at most one value per static type, admitting only [Value]
// types. The zero value is ready for use.
type Set struct {
	t table.Table
}

// New creates an empty [Set].
func New(opts ...typeset.Option) *Set {
	s := &Set{}
	s.t.Init(opts...)
	return s
}

// Len returns the number of distinct types in the set.
func (s *Set) Len() int { return s.t.Len() }

// IsEmpty reports whether the set holds no values.
func (s *Set) IsEmpty() bool { return s.t.Len() == 0 }

// Clear removes every value from the set.
func (s *Set) Clear() { s.t.Clear() }

// ContainsID reports whether the set holds a value of the type identified by
// id.
func (s *Set) ContainsID(id typeset.TypeID) bool { return s.t.ContainsID(id) }

// TypeIDs yields the identity of every stored type in unspecified order.
func (s *Set) TypeIDs() iter.Seq[typeset.TypeID] { return s.t.TypeIDs() }

// Capability returns typeset.Shareable.
func (s *Set) Capability() typeset.Capability { return typeset.Shareable }

// LogValue implements [slog.LogValuer].
func (s *Set) LogValue() slog.Value { return s.t.LogValue(typeset.Shareable) }

// Insert stores v under its static type T, returning any value it replaced.
func Insert[T Value](s *Set, v T) (prev T, replaced bool) {
	return table.Insert(&s.t, v)
}

// Get returns a copy of the value of type T. Get does not modify the set and
// may run concurrently with other reads.
func Get[T Value](r Reader) (T, bool) {
	return table.Get[T](r.readTable())
}

// GetRef returns a pointer to the stored value of type T for reading. The
// value must not be written through it while other readers may be active.
func GetRef[T Value](r Reader) (*T, bool) {
	return table.GetMut[T](r.readTable())
}

// GetMut returns a pointer to the stored value of type T for writing. The
// caller must hold exclusive access to the set while using it.
func GetMut[T Value](s *Set) (*T, bool) {
	return table.GetMut[T](&s.t)
}

// Remove takes the value of type T out of the set.
func Remove[T Value](s *Set) (T, bool) {
	return table.Remove[T](&s.t)
}

// Contains reports whether the set holds a value of type T.
func Contains[T Value](r Reader) bool {
	return table.Contains[T](r.readTable())
}

// GetOrInsert returns a pointer to the value of type T, inserting def first
// if there is none.
func GetOrInsert[T Value](s *Set, def T) *T {
	return table.GetOrInsert(&s.t, def)
}

// GetOrInsertWith returns a pointer to the value of type T, storing the
// result of f first if there is none. f is not called otherwise.
func GetOrInsertWith[T Value](s *Set, f func() T) *T {
	return table.GetOrInsertWith(&s.t, f)
}
