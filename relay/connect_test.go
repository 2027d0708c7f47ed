package relay_test

import (
	"errors"
	"testing"

	"github.com/delaneyj/slotparty/relay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectDelivers(t *testing.T) {
	f := newFixture()
	e, r := f.emitter("e"), f.receiver("r")

	relay.Connect(e, signalA, r, slotX)
	relay.Emit(e, signalA, 42)

	assert.Equal(t, []string{"r.slotX(42)"}, f.take())
	assert.True(t, relay.IsConnected(e, signalA))
	assert.True(t, relay.IsConnectedTo(e, r))
	assert.True(t, relay.Emitters(r).Contains(e.ID()))
	requireConsistent(t, f.rs)
}

func TestConnectTwiceInvokesTwice(t *testing.T) {
	f := newFixture()
	e, r := f.emitter("e"), f.receiver("r")

	relay.Connect(e, signalA, r, slotX)
	relay.Connect(e, signalA, r, slotX)
	relay.Connect(e, signalB, r, slotY)
	relay.Emit(e, signalA, 1)

	assert.Equal(t, []string{"r.slotX(1)", "r.slotX(1)"}, f.take())
	assert.Equal(t, 1, relay.Emitters(r).Cardinality(), "reverse index is a set")
	assert.Equal(t, 3, f.rs.Stats().Connections)
	requireConsistent(t, f.rs)
}

func TestConnectUnique(t *testing.T) {
	f := newFixture(relay.WithUniqueConnections())
	e, r := f.emitter("e"), f.receiver("r")

	relay.Connect(e, signalA, r, slotX)
	relay.Connect(e, signalA, r, slotX)
	relay.Connect(e, signalA, r, slotY)
	relay.Emit(e, signalA, 1)

	assert.Equal(t, []string{"r.slotX(1)", "r.slotY(1)"}, f.take())
	requireConsistent(t, f.rs)
}

func TestConnectSelf(t *testing.T) {
	f := newFixture()
	r := f.receiver("r")

	relay.Connect(r, signalA, r, slotX)
	relay.Emit(r, signalA, 3)
	assert.Equal(t, []string{"r.slotX(3)"}, f.take())
	assert.True(t, relay.IsConnectedTo(r, r))
	assert.True(t, relay.Emitters(r).Contains(r.ID()))
	requireConsistent(t, f.rs)

	relay.Disconnect(r, signalA, r, slotX)
	assert.False(t, relay.IsConnectedTo(r, r))
	assert.Equal(t, 0, relay.Emitters(r).Cardinality())
	requireConsistent(t, f.rs)
}

func TestSameSelectorDifferentEmitters(t *testing.T) {
	f := newFixture()
	e1, e2, r := f.emitter("e1"), f.emitter("e2"), f.receiver("r")

	relay.Connect(e1, signalA, r, slotX)
	relay.Emit(e2, signalA, 1)
	assert.Empty(t, f.take())

	relay.Emit(e1, signalA, 2)
	assert.Equal(t, []string{"r.slotX(2)"}, f.take())
	assert.False(t, relay.IsConnected(e2, signalA))
}

func TestConnectDestroyedPanics(t *testing.T) {
	f := newFixture()
	e, r := f.emitter("e"), f.receiver("r")
	r.Destroy()

	err := panicErr(t, func() {
		relay.Connect(e, signalA, r, slotX)
	})
	assert.True(t, errors.Is(err, relay.ErrDestroyedNode))
	requireConsistent(t, f.rs)
}

func TestConnectForeignPanics(t *testing.T) {
	f, g := newFixture(), newFixture()
	e, r := f.emitter("e"), g.receiver("r")

	err := panicErr(t, func() {
		relay.Connect(e, signalA, r, slotX)
	})
	assert.ErrorIs(t, err, relay.ErrForeignNode)
}

func TestUnboundNodePanics(t *testing.T) {
	f := newFixture()
	r := f.receiver("r")
	var e emitter

	err := panicErr(t, func() {
		relay.Connect(&e, signalA, r, slotX)
	})
	require.ErrorIs(t, err, relay.ErrUnboundNode)
	assert.False(t, e.Alive())
	e.Destroy()
}
