//go:build !typeset_release

package send

import "iter"

// DebugTypeNames yields a readable name for every stored type. Not available
// with the typeset_release build tag.
func (s *Set) DebugTypeNames() iter.Seq[string] {
	return s.t.DebugTypeNames()
}
