package typeset

import "github.com/ARTM2000/typeset/internal/table"

// TypeID identifies a static Go type. It is comparable and may be used as a
// map key. The zero TypeID identifies no type.
type TypeID = table.TypeID

// TypeIDOf returns the identity of T.
func TypeIDOf[T any]() TypeID {
	return table.TypeIDOf[T]()
}
