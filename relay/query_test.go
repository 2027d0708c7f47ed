package relay_test

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/delaneyj/slotparty/relay"
	"github.com/stretchr/testify/assert"
)

func TestReceivers(t *testing.T) {
	f := newFixture()
	e := f.emitter("e")
	r1, r2, r3 := f.receiver("r1"), f.receiver("r2"), f.receiver("r3")
	relay.Connect(e, signalA, r1, slotX)
	relay.Connect(e, signalA, r1, slotY)
	relay.Connect(e, signalA, r2, slotX)
	relay.Connect(e, signalB, r3, slotX)
	relay.Connect(e, signalB, r1, slotX)

	all := relay.Receivers(e)
	assert.True(t, all.Equal(mapset.NewThreadUnsafeSet(r1.ID(), r2.ID(), r3.ID())))

	onA := relay.SignalReceivers(e, signalA)
	assert.True(t, onA.Equal(mapset.NewThreadUnsafeSet(r1.ID(), r2.ID())))

	assert.Equal(t, 0, relay.SignalReceivers(r1, signalA).Cardinality())
	assert.Len(t, relay.Signals(e), 2)
}

func TestIsConnectedTo(t *testing.T) {
	f := newFixture()
	e, r, stranger := f.emitter("e"), f.receiver("r"), f.receiver("stranger")
	relay.Connect(e, signalB, r, slotY)

	assert.True(t, relay.IsConnectedTo(e, r))
	assert.False(t, relay.IsConnectedTo(e, stranger))
	assert.False(t, relay.IsConnectedTo(r, e), "connections are directed")
}

func TestEmittersIsACopy(t *testing.T) {
	f := newFixture()
	e, r := f.emitter("e"), f.receiver("r")
	relay.Connect(e, signalA, r, slotX)

	emitters := relay.Emitters(r)
	emitters.Clear()
	assert.True(t, relay.Emitters(r).Contains(e.ID()))
	requireConsistent(t, f.rs)
}

func TestQueriesOnDestroyedNode(t *testing.T) {
	f := newFixture()
	e, r := f.emitter("e"), f.receiver("r")
	relay.Connect(e, signalA, r, slotX)
	e.Destroy()

	assert.False(t, relay.IsConnected(e, signalA))
	assert.False(t, relay.IsConnectedTo(e, r))
	assert.Equal(t, 0, relay.Receivers(e).Cardinality())
	assert.Equal(t, 0, relay.Emitters(e).Cardinality())
	assert.Nil(t, relay.Signals(e))
	assert.Empty(t, e.Name())

	relay.Emit(e, signalA, 1)
	relay.DisconnectAll(e)
	assert.Empty(t, f.take())
}

func TestIDString(t *testing.T) {
	var zero relay.ID
	assert.True(t, zero.IsZero())
	assert.Equal(t, "node(nil)", zero.String())

	f := newFixture()
	e := f.emitter("e")
	assert.False(t, e.ID().IsZero())
	assert.Equal(t, "node(0.1)", e.ID().String())
	assert.Equal(t, "node(0.1).signalA", relay.SignalKey{Emitter: e.ID(), Selector: signalA}.String())
}
