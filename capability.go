package typeset

import "github.com/ARTM2000/typeset/internal/table"

// Capability is the bound a set places on the types it admits. It is fixed
// by the set's type and reported by its Capability method.
type Capability = table.Capability

const (
	// Any is the capability of [Set]: every type is admitted.
	Any = table.Any

	// Transferable is the capability of send.Set.
	Transferable = table.Transferable

	// Shareable is the capability of shared.Set.
	Shareable = table.Shareable
)
