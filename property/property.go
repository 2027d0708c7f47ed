// Package property provides observable values built on relay: a Property
// emits Changed whenever its value actually changes, and properties can be
// bound to each other or derived from one another.
package property

import "github.com/delaneyj/slotparty/relay"

type Property[T comparable] struct {
	relay.Node
	value T
	// Changed is emitted with the new value after every change.
	Changed *relay.Signal[T]
	set     *relay.Slot[*Property[T], T]
}

func New[T comparable](rs *relay.Registry, initialValue T) *Property[T] {
	return &Property[T]{
		Node:    rs.NewNode("property"),
		value:   initialValue,
		Changed: relay.NewSignal[T]("changed"),
		set:     relay.NewSlot("setValue", (*Property[T]).SetValue),
	}
}

func (p *Property[T]) Value() T {
	return p.value
}

func (p *Property[T]) SetValue(v T) {
	if p.value == v {
		return
	}
	p.value = v
	relay.Emit(p, p.Changed, v)
}

// Bind makes dst follow src until Unbind is called or either side is
// destroyed. dst takes the current value of src right away. Binding both
// ways is fine, equal values stop the echo.
func Bind[T comparable](src, dst *Property[T]) {
	relay.Connect(src, src.Changed, dst, dst.set)
	dst.SetValue(src.value)
}

func Unbind[T comparable](src, dst *Property[T]) {
	relay.Disconnect(src, src.Changed, dst, dst.set)
}

// Map returns a property that holds fn applied to the value of src.
func Map[T, O comparable](src *Property[T], fn func(T) O) *Property[O] {
	dst := New(src.Registry(), fn(src.value))
	relay.Connect(src, src.Changed, dst, relay.NewSlot("map", func(p *Property[O], v T) {
		p.SetValue(fn(v))
	}))
	return dst
}

// Combine returns a property that holds fn applied to the values of a and b.
func Combine[A, B, O comparable](a *Property[A], b *Property[B], fn func(A, B) O) *Property[O] {
	dst := New(a.Registry(), fn(a.value, b.value))
	relay.Connect(a, a.Changed, dst, relay.NewSlot("combineA", func(p *Property[O], v A) {
		p.SetValue(fn(v, b.value))
	}))
	relay.Connect(b, b.Changed, dst, relay.NewSlot("combineB", func(p *Property[O], v B) {
		p.SetValue(fn(a.value, v))
	}))
	return dst
}

type watcher struct {
	relay.Node
}

// Watch calls fn with every new value of p until stop is called.
func Watch[T comparable](p *Property[T], fn func(T)) (stop func()) {
	w := &watcher{Node: p.Registry().NewNode("watcher")}
	relay.Connect(p, p.Changed, w, relay.NewSlot("watch", func(_ *watcher, v T) {
		fn(v)
	}))
	return w.Destroy
}
