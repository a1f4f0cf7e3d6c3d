package typeset

import (
	"slices"
	"testing"
)

// Shared test types used across test files.

type testConfig struct{ DSN string }

type testLogger struct{ Prefix string }

type testQueue struct{ Events []string }

func (q *testQueue) Push(e string) { q.Events = append(q.Events, e) }

type testCounter int

type testNamer interface{ Name() string }

type testNamed struct{ name string }

func (n testNamed) Name() string { return n.name }

// mustGet calls t.Fatal if s holds no value of T.
func mustGet[T any](t *testing.T, s *Set) T {
	t.Helper()
	v, ok := Get[T](s)
	if !ok {
		t.Fatalf("Get[%s]: not found", TypeIDOf[T]())
	}
	return v
}

// collectIDs drains s.TypeIDs into a slice.
func collectIDs(s *Set) []TypeID {
	return slices.Collect(s.TypeIDs())
}
