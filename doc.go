// Package typeset provides a set of values keyed by their static type.
//
// A [Set] holds at most one value of each Go type. There is no key to choose:
// the type itself is the key, so a set is a convenient home for process-wide
// singletons such as event queues, resource handles or shared caches.
//
// # Quick Start
//
//	s := typeset.New()
//	typeset.Insert(s, &EventQueue{})
//	typeset.Insert(s, Config{Port: 8080})
//
//	q, ok := typeset.Get[*EventQueue](s)
//	cfg, _ := typeset.GetMut[Config](s)
//	cfg.Port = 9090
//
// The key is the static type of the argument. Insert(s, err) with err
// declared as error stores under error, not under the dynamic type of err.
//
// # Variants
//
// [Set] admits any type. Two variants restrict the types they admit with
// compile-time constraints and otherwise behave identically:
//
// Package [github.com/ARTM2000/typeset/send] admits types that implement
// send.Value, declaring they may be handed to another goroutine.
//
// Package [github.com/ARTM2000/typeset/shared] additionally requires
// shared.Value, declaring the type may be read by several goroutines at once.
//
// None of the sets lock. A set is owned by one goroutine at a time unless
// the caller synchronizes access, for example with shared.Guard.
//
// # Build Tags
//
// Building with -tags typeset_release removes [Set.DebugTypeNames] and the
// internal type assertions made on every lookup.
package typeset
