//go:build !typeset_release

package typeset

import "iter"

// DebugTypeNames yields a readable name for every stored type, for logging
// and debugging. Names are not stable across toolchains and may collide.
// The method is not available when building with the typeset_release tag.
func (s *Set) DebugTypeNames() iter.Seq[string] {
	return s.t.DebugTypeNames()
}
