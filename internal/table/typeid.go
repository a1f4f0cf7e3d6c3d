package table

import "reflect"

// TypeID identifies a static Go type. TypeIDs are comparable and stable for
// the life of the process. The zero TypeID identifies no type.
type TypeID struct {
	rtype reflect.Type
}

// TypeIDOf returns the identity of T.
func TypeIDOf[T any]() TypeID {
	return TypeID{rtype: reflect.TypeFor[T]()}
}

// IsZero reports whether id identifies no type.
func (id TypeID) IsZero() bool {
	return id.rtype == nil
}
