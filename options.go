package typeset

import "github.com/ARTM2000/typeset/internal/table"

// Option configures a set during construction. The same options are accepted
// by every variant.
type Option = table.Option

// WithCapacity hints that the set will hold about n distinct types, so it
// can be allocated once up front.
func WithCapacity(n int) Option {
	return table.WithCapacity(n)
}
