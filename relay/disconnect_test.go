package relay_test

import (
	"testing"

	"github.com/delaneyj/slotparty/relay"
	"github.com/stretchr/testify/assert"
)

func TestDisconnectExact(t *testing.T) {
	f := newFixture()
	e, r := f.emitter("e"), f.receiver("r")
	relay.Connect(e, signalA, r, slotX)
	relay.Connect(e, signalA, r, slotY)
	relay.Connect(e, signalA, r, slotX)

	relay.Disconnect(e, signalA, r, slotX)
	relay.Emit(e, signalA, 1)

	assert.Equal(t, []string{"r.slotY(1)"}, f.take())
	assert.True(t, relay.Emitters(r).Contains(e.ID()), "slotY still connects r to e")
	requireConsistent(t, f.rs)

	relay.Disconnect(e, signalA, r, slotY)
	assert.False(t, relay.IsConnected(e, signalA))
	assert.Empty(t, relay.Signals(e), "emptied keys are pruned")
	assert.False(t, relay.Emitters(r).Contains(e.ID()))
	requireConsistent(t, f.rs)
}

func TestDisconnectReceiver(t *testing.T) {
	f := newFixture()
	e, r, other := f.emitter("e"), f.receiver("r"), f.receiver("other")
	relay.Connect(e, signalA, r, slotX)
	relay.Connect(e, signalA, other, slotX)
	relay.Connect(e, signalA, r, slotY)
	relay.Connect(e, signalB, r, slotX)

	relay.DisconnectReceiver(e, signalA, r)

	relay.Emit(e, signalA, 1)
	assert.Equal(t, []string{"other.slotX(1)"}, f.take())
	relay.Emit(e, signalB, 2)
	assert.Equal(t, []string{"r.slotX(2)"}, f.take())
	assert.True(t, relay.Emitters(r).Contains(e.ID()))
	requireConsistent(t, f.rs)

	relay.DisconnectReceiver(e, signalB, r)
	assert.False(t, relay.IsConnectedTo(e, r))
	assert.Equal(t, 0, relay.Emitters(r).Cardinality())
	requireConsistent(t, f.rs)
}

func TestDisconnectSignal(t *testing.T) {
	f := newFixture()
	e := f.emitter("e")
	r1, r2 := f.receiver("r1"), f.receiver("r2")
	relay.Connect(e, signalA, r1, slotX)
	relay.Connect(e, signalA, r2, slotX)
	relay.Connect(e, signalA, r2, slotY)
	relay.Connect(e, signalB, r2, slotY)

	relay.DisconnectSignal(e, signalA)

	relay.Emit(e, signalA, 1)
	assert.Empty(t, f.take())
	assert.False(t, relay.IsConnected(e, signalA))
	assert.Equal(t, 0, relay.Emitters(r1).Cardinality())
	assert.True(t, relay.Emitters(r2).Contains(e.ID()), "r2 is still on signalB")
	requireConsistent(t, f.rs)
}

func TestDisconnectAll(t *testing.T) {
	f := newFixture()
	e := f.emitter("e")
	r1, r2 := f.receiver("r1"), f.receiver("r2")
	other := f.emitter("other")
	relay.Connect(e, signalA, r1, slotX)
	relay.Connect(e, signalB, r2, slotY)
	relay.Connect(other, signalA, r1, slotY)

	relay.DisconnectAll(e)

	relay.Emit(e, signalA, 1)
	relay.Emit(e, signalB, 1)
	assert.Empty(t, f.take())
	assert.Empty(t, relay.Signals(e))
	assert.Equal(t, 0, relay.Emitters(r2).Cardinality())
	assert.Equal(t, []relay.ID{other.ID()}, relay.Emitters(r1).ToSlice())
	requireConsistent(t, f.rs)
}

func TestDisconnectMissingIsNoop(t *testing.T) {
	f := newFixture()
	e, r := f.emitter("e"), f.receiver("r")

	relay.Disconnect(e, signalA, r, slotX)
	relay.DisconnectReceiver(e, signalA, r)
	relay.DisconnectSignal(e, signalA)
	relay.DisconnectAll(e)
	requireConsistent(t, f.rs)

	relay.Connect(e, signalB, r, slotX)
	relay.Disconnect(e, signalA, r, slotX)
	relay.Disconnect(e, signalB, r, slotY)
	relay.Emit(e, signalB, 5)
	assert.Equal(t, []string{"r.slotX(5)"}, f.take())
	requireConsistent(t, f.rs)
}

func TestDisconnectIdempotent(t *testing.T) {
	tests := []struct {
		name       string
		disconnect func(e *emitter, r *receiver)
	}{
		{"exact", func(e *emitter, r *receiver) { relay.Disconnect(e, signalA, r, slotX) }},
		{"receiver", func(e *emitter, r *receiver) { relay.DisconnectReceiver(e, signalA, r) }},
		{"signal", func(e *emitter, r *receiver) { relay.DisconnectSignal(e, signalA) }},
		{"emitter", func(e *emitter, r *receiver) { relay.DisconnectAll(e) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			e, r := f.emitter("e"), f.receiver("r")
			relay.Connect(e, signalA, r, slotX)
			relay.Connect(e, signalA, r, slotX)

			tt.disconnect(e, r)
			once := f.rs.Stats()
			tt.disconnect(e, r)

			assert.Equal(t, once, f.rs.Stats())
			assert.Zero(t, once.Connections)
			assert.Zero(t, once.ReverseLinks)
			requireConsistent(t, f.rs)
		})
	}
}

func TestReconnectMovesToEnd(t *testing.T) {
	f := newFixture()
	e := f.emitter("e")
	a, b, c := f.receiver("a"), f.receiver("b"), f.receiver("c")
	relay.Connect(e, signalA, a, slotX)
	relay.Connect(e, signalA, b, slotX)
	relay.Connect(e, signalA, c, slotX)

	relay.Disconnect(e, signalA, a, slotX)
	relay.Connect(e, signalA, a, slotX)
	relay.Emit(e, signalA, 0)

	assert.Equal(t, []string{"b.slotX(0)", "c.slotX(0)", "a.slotX(0)"}, f.take())
	requireConsistent(t, f.rs)
}
