package relay

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// DynamicSignal is a signal looked up by name whose arguments are only
// checked against each handler when it is emitted. Prefer Signal where the
// argument types are known at compile time.
type DynamicSignal struct {
	name string
}

func (s *DynamicSignal) Name() string { return s.name }
func (s *DynamicSignal) isSelector()  {}

// Named returns the dynamic signal called name, creating it on first use.
// The same name always yields the same selector within a registry.
func (rs *Registry) Named(name string) *DynamicSignal {
	sum := xxhash.Sum64String(name)
	bucket := rs.named[sum]
	for _, s := range bucket {
		if s.name == name {
			return s
		}
	}
	s := &DynamicSignal{name: name}
	rs.named[sum] = append(bucket, s)
	return s
}

// DynamicSlot wraps a function whose first parameter is the receiver and
// whose remaining parameters are matched against emitted arguments.
type DynamicSlot struct {
	name string
	fn   reflect.Value
}

var objectType = reflect.TypeOf((*Object)(nil)).Elem()

// NewDynamicSlot panics with ErrNotFunc or ErrBadHandler when fn is not a
// non-variadic function taking an Object first.
func NewDynamicSlot(name string, fn any) *DynamicSlot {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		panic(fmt.Errorf("relay: slot %q: %w", name, ErrNotFunc))
	}
	t := v.Type()
	if t.IsVariadic() || t.NumIn() == 0 || !t.In(0).Implements(objectType) {
		panic(fmt.Errorf("relay: slot %q of type %s: %w", name, t, ErrBadHandler))
	}
	return &DynamicSlot{name: name, fn: v}
}

func (s *DynamicSlot) Name() string     { return s.name }
func (s *DynamicSlot) slotName() string { return s.name }

// ConnectDynamic is Connect for dynamic signals. The receiver must be
// assignable to the first parameter of the slot function.
func ConnectDynamic(emitter Object, sig *DynamicSignal, receiver Object, slot *DynamicSlot) {
	rs, eid, rid := pair(emitter, receiver)
	recv := reflect.ValueOf(receiver)
	if want := slot.fn.Type().In(0); !recv.Type().AssignableTo(want) {
		panic(&ContractViolation{
			Signal:   sig.name,
			Slot:     slot.name,
			Receiver: rid,
			Reason:   fmt.Sprintf("receiver %s is not assignable to %s", recv.Type(), want),
		})
	}
	rs.connect(eid, sig, rid, slot, dynamicCall{slot: slot, recv: recv})
}

// DisconnectDynamic is Disconnect for dynamic signals.
func DisconnectDynamic(emitter Object, sig *DynamicSignal, receiver Object, slot *DynamicSlot) {
	rs, eid, rid := pair(emitter, receiver)
	rs.disconnectSlot(eid, sig, rid, slot)
}

// EmitDynamic is Emit for dynamic signals. A slot whose parameters do not
// accept args makes it panic with a *ContractViolation before that slot
// runs.
func EmitDynamic(emitter Object, sig *DynamicSignal, args ...any) {
	n := nodeOf(emitter)
	n.rs.emit(n.id, sig, func(e *slotEntry) {
		call, ok := e.call.(dynamicCall)
		if !ok {
			panic(&ContractViolation{
				Signal:   sig.name,
				Slot:     e.handler.slotName(),
				Receiver: e.receiver,
				Reason:   fmt.Sprintf("slot takes %T", e.call),
			})
		}
		in, err := call.bind(args)
		if err != nil {
			panic(&ContractViolation{
				Signal:   sig.name,
				Slot:     call.slot.name,
				Receiver: e.receiver,
				Reason:   err.Error(),
			})
		}
		call.slot.fn.Call(in)
	})
}

type dynamicCall struct {
	slot *DynamicSlot
	recv reflect.Value
}

// bind converts args to the slot parameters after the receiver.
func (c dynamicCall) bind(args []any) ([]reflect.Value, error) {
	t := c.slot.fn.Type()
	if want := t.NumIn() - 1; len(args) != want {
		return nil, fmt.Errorf("got %d arguments, want %d", len(args), want)
	}

	in := make([]reflect.Value, t.NumIn())
	in[0] = c.recv
	for i, arg := range args {
		pt := t.In(i + 1)
		if arg == nil {
			if !nillable(pt.Kind()) {
				return nil, fmt.Errorf("argument %d is nil, want %s", i, pt)
			}
			in[i+1] = reflect.Zero(pt)
			continue
		}
		v := reflect.ValueOf(arg)
		if !v.Type().AssignableTo(pt) {
			return nil, fmt.Errorf("argument %d is %s, want %s", i, v.Type(), pt)
		}
		in[i+1] = v
	}
	return in, nil
}

func nillable(k reflect.Kind) bool {
	switch k {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return true
	}
	return false
}
