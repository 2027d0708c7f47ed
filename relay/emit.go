package relay

import "fmt"

// Emit calls every slot connected to sig of emitter with args, oldest
// connection first, and returns once all of them returned. Emitting a
// signal nobody listens to does nothing.
//
// Slots may connect, disconnect or destroy nodes while the emission runs.
// Slots removed before their turn are skipped, slots connected during the
// emission only see the next one.
//
// Emit is meant to be called by the emitter itself.
func Emit[A any](emitter Object, sig *Signal[A], args A) {
	n := nodeOf(emitter)
	deliver(n.rs, n.id, sig, args)
}

func deliver[A any](rs *Registry, emitter ID, sig *Signal[A], args A) {
	rs.emit(emitter, sig, func(e *slotEntry) {
		call, ok := e.call.(func(A))
		if !ok {
			panic(&ContractViolation{
				Signal:   sig.Name(),
				Slot:     e.handler.slotName(),
				Receiver: e.receiver,
				Reason:   fmt.Sprintf("expected %T, slot takes %T", args, e.call),
			})
		}
		call(args)
	})
}

func (rs *Registry) emit(emitter ID, sel Selector, invoke func(*slotEntry)) {
	t := rs.table(emitter)
	if t == nil {
		return
	}
	list := t.slots[SignalKey{Emitter: emitter, Selector: sel}]
	if len(list) == 0 {
		return
	}

	snapshot := make(slotList, len(list))
	copy(snapshot, list)

	rs.debugf("relay: emit %s.%s to %d slots", rs.label(emitter), sel.Name(), len(snapshot))
	for _, e := range snapshot {
		if e.removed {
			continue
		}
		invoke(e)
	}
}
