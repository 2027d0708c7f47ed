package relay

// Selector names a signal independently of who emits it. Two emitters
// using the same Selector still own distinct signals.
type Selector interface {
	Name() string
	isSelector()
}

// SignalKey is one signal of one emitter.
type SignalKey struct {
	Emitter  ID
	Selector Selector
}

func (k SignalKey) String() string {
	return k.Emitter.String() + "." + k.Selector.Name()
}

// Signal is a selector for signals carrying a value of type A. Signals are
// compared by pointer, declare them once, usually as package variables.
type Signal[A any] struct {
	name string
}

func NewSignal[A any](name string) *Signal[A] {
	return &Signal[A]{name: name}
}

func (s *Signal[A]) Name() string { return s.name }
func (s *Signal[A]) isSelector()  {}

// handler is the identity of a slot, compared by pointer.
type handler interface {
	slotName() string
}

// Slot is a handler that can be connected to a Signal[A] on receivers of
// type R. Method expressions fit naturally:
//
//	var SetText = relay.NewSlot("setText", (*Label).SetText)
type Slot[R Object, A any] struct {
	name string
	fn   func(R, A)
}

func NewSlot[R Object, A any](name string, fn func(R, A)) *Slot[R, A] {
	return &Slot[R, A]{name: name, fn: fn}
}

func (s *Slot[R, A]) Name() string     { return s.name }
func (s *Slot[R, A]) slotName() string { return s.name }

// Args0 is the payload of signals without arguments.
type Args0 struct{}

func NewSignal0(name string) *Signal[Args0] {
	return NewSignal[Args0](name)
}

func NewSlot0[R Object](name string, fn func(R)) *Slot[R, Args0] {
	return NewSlot(name, func(r R, _ Args0) {
		fn(r)
	})
}

func Emit0(emitter Object, sig *Signal[Args0]) {
	Emit(emitter, sig, Args0{})
}

// Destroyed is emitted by every node as the first step of Destroy, while
// all of its connections are still in place. The argument is the ID of the
// node being destroyed.
var Destroyed = NewSignal[ID]("destroyed")
