package table

// Capability is the bound a set places on the types it admits.
type Capability int

const (
	// Any admits every type.
	Any Capability = iota

	// Transferable admits types declared safe to hand to another goroutine.
	Transferable

	// Shareable admits transferable types that are also declared safe to
	// read from several goroutines at once.
	Shareable
)

// String returns the human-readable name of the capability.
func (c Capability) String() string {
	switch c {
	case Any:
		return "any"
	case Transferable:
		return "transferable"
	case Shareable:
		return "shareable"
	default:
		return "unknown"
	}
}
