package relay_test

import (
	"fmt"
	"testing"

	"github.com/delaneyj/slotparty/relay"
	"github.com/stretchr/testify/require"
)

type emitter struct {
	relay.Node
}

type receiver struct {
	relay.Node
	name   string
	calls  *[]string
	action func()
}

func (r *receiver) slotX(v int) {
	*r.calls = append(*r.calls, fmt.Sprintf("%s.slotX(%d)", r.name, v))
}

func (r *receiver) slotY(v int) {
	*r.calls = append(*r.calls, fmt.Sprintf("%s.slotY(%d)", r.name, v))
}

// act runs the receiver's action before recording the call.
func (r *receiver) act(v int) {
	if r.action != nil {
		r.action()
	}
	*r.calls = append(*r.calls, fmt.Sprintf("%s.act(%d)", r.name, v))
}

var (
	signalA = relay.NewSignal[int]("signalA")
	signalB = relay.NewSignal[int]("signalB")
	slotX   = relay.NewSlot("slotX", (*receiver).slotX)
	slotY   = relay.NewSlot("slotY", (*receiver).slotY)
	act     = relay.NewSlot("act", (*receiver).act)
)

type fixture struct {
	rs    *relay.Registry
	calls []string
}

func newFixture(opts ...relay.Option) *fixture {
	return &fixture{rs: relay.New(opts...)}
}

func (f *fixture) emitter(name string) *emitter {
	return &emitter{Node: f.rs.NewNode(name)}
}

func (f *fixture) receiver(name string) *receiver {
	return &receiver{Node: f.rs.NewNode(name), name: name, calls: &f.calls}
}

// take returns the calls recorded so far and resets the log.
func (f *fixture) take() []string {
	calls := f.calls
	f.calls = nil
	return calls
}

func requireConsistent(t *testing.T, rs *relay.Registry) {
	t.Helper()
	require.NoError(t, rs.Check())
}

// panicErr runs fn and returns the error it panicked with.
func panicErr(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		e, ok := r.(error)
		require.Truef(t, ok, "panic value %v is not an error", r)
		err = e
	}()
	fn()
	return nil
}
