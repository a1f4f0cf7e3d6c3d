// Package send provides a typeset whose values may be handed to another
// goroutine.
//
// Only types implementing [Value] are admitted, which the compiler checks at
// every call:
//
//	type Inbox struct {
//		send.Marker
//		Events []Event
//	}
//
//	s := send.New()
//	send.Insert(s, &Inbox{})
//	go worker(s.Handoff())
//
// Beyond the bound, a [Set] behaves exactly like typeset.Set.
package send

import (
	"iter"
	"log/slog"

	"github.com/ARTM2000/typeset"
	"github.com/ARTM2000/typeset/internal/table"
)

// Value is implemented by types that are safe to pass to another goroutine
// together with the set holding them. Embed [Marker] or declare the method
// directly on named scalar types.
type Value interface {
	ErasedSend()
}

// Marker implements [Value] when embedded.
type Marker struct{}

// ErasedSend implements [Value].
func (Marker) ErasedSend() {}

// Set stores at most one value per static type, admitting only [Value]
// types. The zero value is ready for use. A Set is not safe for concurrent
// use, but may be transferred between goroutines.
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

// Capability returns typeset.Transferable.
func (s *Set) Capability() typeset.Capability { return typeset.Transferable }

// LogValue implements [slog.LogValuer].
func (s *Set) LogValue() slog.Value { return s.t.LogValue(typeset.Transferable) }

// Handoff moves every value into a new set and leaves s empty. The sender
// keeps no reference to the moved values through s.
//
//	ch <- s.Handoff()
func (s *Set) Handoff() *Set {
	return &Set{t: s.t.Take()}
}

// Insert stores v under its static type T, returning any value it replaced.
func Insert[T Value](s *Set, v T) (prev T, replaced bool) {
	return table.Insert(&s.t, v)
}

// Get returns a copy of the value of type T.
func Get[T Value](s *Set) (T, bool) {
	return table.Get[T](&s.t)
}

// GetMut returns a pointer to the stored value of type T.
func GetMut[T Value](s *Set) (*T, bool) {
	return table.GetMut[T](&s.t)
}

// Remove takes the value of type T out of the set.
func Remove[T Value](s *Set) (T, bool) {
	return table.Remove[T](&s.t)
}

// Contains reports whether the set holds a value of type T.
func Contains[T Value](s *Set) bool {
	return table.Contains[T](&s.t)
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
