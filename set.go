package typeset

import (
	"iter"
	"log/slog"

	"github.com/ARTM2000/typeset/internal/table"
)

// Set stores at most one value per static type. The zero value is an empty
// set ready for use; [New] additionally accepts options.
//
// A Set is not safe for concurrent use. Use the generic functions [Insert],
// [Get], [GetMut], [Remove], [Contains], [GetOrInsert] and [GetOrInsertWith]
// to work with values.
type Set struct {
	t table.Table
}

// New creates an empty [Set].
func New(opts ...Option) *Set {
	s := &Set{}
	s.t.Init(opts...)
	return s
}

// Len returns the number of distinct types in the set.
func (s *Set) Len() int {
	return s.t.Len()
}

// IsEmpty reports whether the set holds no values.
func (s *Set) IsEmpty() bool {
	return s.t.Len() == 0
}

// Clear removes every value from the set.
func (s *Set) Clear() {
	s.t.Clear()
}

// ContainsID reports whether the set holds a value of the type identified by
// id.
func (s *Set) ContainsID(id TypeID) bool {
	return s.t.ContainsID(id)
}

// TypeIDs yields the identity of every stored type in unspecified order. The
// sequence can be ranged over more than once. The set must not be modified
// during a range.
func (s *Set) TypeIDs() iter.Seq[TypeID] {
	return s.t.TypeIDs()
}

// Capability returns [Any].
func (s *Set) Capability() Capability {
	return Any
}

// LogValue implements [slog.LogValuer].
func (s *Set) LogValue() slog.Value {
	return s.t.LogValue(Any)
}
