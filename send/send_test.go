package send

import (
	"bytes"
	"log/slog"
	"slices"
	"testing"

	"github.com/ARTM2000/typeset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inbox struct {
	Marker
	Events []string
}

type port int

func (port) ErasedSend() {}

func TestOperations(t *testing.T) {
	s := New(typeset.WithCapacity(4))
	require.True(t, s.IsEmpty())

	_, replaced := Insert(s, port(80))
	assert.False(t, replaced)

	prev, replaced := Insert(s, port(443))
	require.True(t, replaced)
	assert.Equal(t, port(80), prev)

	Insert(s, &inbox{})
	assert.Equal(t, 2, s.Len())

	box, ok := Get[*inbox](s)
	require.True(t, ok)
	box.Events = append(box.Events, "hello")

	p, ok := GetMut[port](s)
	require.True(t, ok)
	*p = 8443

	v, _ := Get[port](s)
	assert.Equal(t, port(8443), v)
	assert.True(t, Contains[*inbox](s))
	assert.False(t, Contains[inbox](s))

	removed, ok := Remove[*inbox](s)
	require.True(t, ok)
	assert.Equal(t, []string{"hello"}, removed.Events)
	assert.Equal(t, 1, s.Len())

	s.Clear()
	assert.True(t, s.IsEmpty())
}

func TestGetOrInsert(t *testing.T) {
	s := New()
	a := GetOrInsert(s, port(1))
	b := GetOrInsert(s, port(2))
	assert.Same(t, a, b)
	assert.Equal(t, port(1), *b)

	calls := 0
	GetOrInsertWith(s, func() port { calls++; return 3 })
	assert.Equal(t, 0, calls)

	GetOrInsertWith(s, func() inbox { calls++; return inbox{} })
	assert.Equal(t, 1, calls)
}

func TestTypeIDs(t *testing.T) {
	s := New()
	Insert(s, port(1))
	Insert(s, inbox{})

	ids := slices.Collect(s.TypeIDs())
	assert.ElementsMatch(t, []typeset.TypeID{
		typeset.TypeIDOf[port](),
		typeset.TypeIDOf[inbox](),
	}, ids)
	assert.True(t, s.ContainsID(typeset.TypeIDOf[port]()))
}

func TestHandoff(t *testing.T) {
	s := New()
	Insert(s, port(9000))

	ch := make(chan *Set, 1)
	ch <- s.Handoff()
	assert.True(t, s.IsEmpty())

	done := make(chan port)
	go func() {
		recv := <-ch
		v, _ := Get[port](recv)
		done <- v
	}()
	assert.Equal(t, port(9000), <-done)

	Insert(s, port(1))
	assert.Equal(t, 1, s.Len(), "source stays usable after Handoff")
}

func TestCapabilityAndLog(t *testing.T) {
	s := New()
	Insert(s, port(1))
	assert.Equal(t, typeset.Transferable, s.Capability())

	var buf bytes.Buffer
	slog.New(slog.NewTextHandler(&buf, nil)).Info("state", "set", s)
	assert.Contains(t, buf.String(), "set.capability=transferable")
	assert.Contains(t, buf.String(), "set.len=1")
}
