//go:build !typeset_release

package table

import (
	"fmt"
	"iter"
	"reflect"
)

// Debug reports whether diagnostics and invariant checks are compiled in.
// Build with the typeset_release tag to remove them.
const Debug = true

func assertType(have, want reflect.Type) {
	if have != want {
		panic(fmt.Sprintf("table: holder of %s read as %s", have, want))
	}
}

// DebugTypeNames yields the Go syntax name of every stored type, in
// unspecified order. Names are not stable across toolchains.
func (t *Table) DebugTypeNames() iter.Seq[string] {
	return t.names()
}

// String returns the Go syntax name of the type. Names are for diagnostics
// only: distinct types may share a name.
func (id TypeID) String() string {
	if id.rtype == nil {
		return "<nil>"
	}
	return id.rtype.String()
}
