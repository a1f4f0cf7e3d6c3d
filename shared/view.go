package shared

import (
	"iter"

	"github.com/ARTM2000/typeset"
	"github.com/ARTM2000/typeset/internal/table"
)

// Reader is satisfied by *Set and View. The read operations [Get], [GetRef]
// and [Contains] accept either.
type Reader interface {
	readTable() *table.Table
}

func (s *Set) readTable() *table.Table { return &s.t }

// View is a read-only handle on a [Set]. It exposes no operation that
// modifies the set, so any number of Views may be used at once. The zero
// View reads as an empty set.
type View struct {
	t *table.Table
}

// View returns a read-only handle on s.
func (s *Set) View() View {
	return View{t: &s.t}
}

var emptyTable table.Table

func (v View) readTable() *table.Table {
	if v.t == nil {
		return &emptyTable
	}
	return v.t
}

// Len returns the number of distinct types in the set.
func (v View) Len() int { return v.readTable().Len() }

// IsEmpty reports whether the set holds no values.
func (v View) IsEmpty() bool { return v.readTable().Len() == 0 }

// ContainsID reports whether the set holds a value of the type identified by
// id.
func (v View) ContainsID(id typeset.TypeID) bool { return v.readTable().ContainsID(id) }

// TypeIDs yields the identity of every stored type in unspecified order.
func (v View) TypeIDs() iter.Seq[typeset.TypeID] { return v.readTable().TypeIDs() }
