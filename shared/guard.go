package shared

import "sync"

// Guard pairs a [Set] with a read/write lock so it can be used from several
// goroutines. Any number of Read calls may run at once; Write is exclusive.
//
// Pointers obtained inside a callback must not be used after it returns.
type Guard struct {
	mu  sync.RWMutex
	set *Set
}

// NewGuard wraps s. If s is nil a new empty set is used. The caller must not
// touch s directly afterwards.
func NewGuard(s *Set) *Guard {
	if s == nil {
		s = New()
	}
	return &Guard{set: s}
}

// Read calls fn with a read-only view of the set under the read lock.
func (g *Guard) Read(fn func(v View)) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	fn(g.set.View())
}

// Write calls fn with the set under the write lock.
func (g *Guard) Write(fn func(s *Set)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.set)
}

// Load returns a copy of the value of type T under the read lock.
func Load[T Value](g *Guard) (v T, ok bool) {
	g.Read(func(view View) {
		v, ok = Get[T](view)
	})
	return v, ok
}

// Store inserts v under the write lock, returning any value it replaced.
func Store[T Value](g *Guard, v T) (prev T, replaced bool) {
	g.Write(func(s *Set) {
		prev, replaced = Insert(s, v)
	})
	return prev, replaced
}

// Update calls fn with a pointer to the value of type T under the write
// lock, inserting the result of newValue first if the set has none.
func Update[T Value](g *Guard, newValue func() T, fn func(*T)) {
	g.Write(func(s *Set) {
		fn(GetOrInsertWith(s, newValue))
	})
}
