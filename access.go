package typeset

import "github.com/ARTM2000/typeset/internal/table"

// Insert stores v under its static type T. If the set already held a value
// of T, that value is returned and replaced is true.
//
//	typeset.Insert(s, 5)            // (0, false)
//	typeset.Insert(s, 6)            // (5, true)
func Insert[T any](s *Set, v T) (prev T, replaced bool) {
	return table.Insert(&s.t, v)
}

// Get returns a copy of the value of type T.
//
//	n, ok := typeset.Get[int](s)
func Get[T any](s *Set) (T, bool) {
	return table.Get[T](&s.t)
}

// GetMut returns a pointer to the stored value of type T. The pointer is
// valid until the value is removed, replaced or the set is cleared.
func GetMut[T any](s *Set) (*T, bool) {
	return table.GetMut[T](&s.t)
}

// Remove takes the value of type T out of the set.
func Remove[T any](s *Set) (T, bool) {
	return table.Remove[T](&s.t)
}

// Contains reports whether the set holds a value of type T.
func Contains[T any](s *Set) bool {
	return table.Contains[T](&s.t)
}

// GetOrInsert returns a pointer to the value of type T, inserting def first
// if the set has none. def is evaluated by the caller either way; use
// [GetOrInsertWith] when it is expensive to build.
func GetOrInsert[T any](s *Set, def T) *T {
	return table.GetOrInsert(&s.t, def)
}

// GetOrInsertWith is like [GetOrInsert] but only calls f when the set holds
// no value of type T. If f itself inserts a T into s, that value is kept and
// the result of f is discarded.
//
//	q := typeset.GetOrInsertWith(s, NewEventQueue)
func GetOrInsertWith[T any](s *Set, f func() T) *T {
	return table.GetOrInsertWith(&s.t, f)
}
