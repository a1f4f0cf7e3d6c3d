//go:build typeset_release

package table

import (
	"fmt"
	"reflect"
)

// Debug reports whether diagnostics and invariant checks are compiled in.
const Debug = false

func assertType(reflect.Type, reflect.Type) {}

// String returns an opaque token for the type. Type names are not part of
// release builds.
func (id TypeID) String() string {
	if id.rtype == nil {
		return "<nil>"
	}
	return fmt.Sprintf("typeid(%p)", id.rtype)
}
