package relay

import "fmt"

// Connect registers slot on receiver for sig emitted by emitter. Every call
// adds one more invocation per emission unless the registry was created
// with WithUniqueConnections. A node may connect to its own signals.
func Connect[R Object, A any](emitter Object, sig *Signal[A], receiver R, slot *Slot[R, A]) {
	rs, eid, rid := pair(emitter, receiver)
	call := func(args A) {
		slot.fn(receiver, args)
	}
	rs.connect(eid, sig, rid, slot, call)
}

func (rs *Registry) connect(emitter ID, sel Selector, receiver ID, h handler, call any) {
	erec, rrec := rs.record(emitter), rs.record(receiver)
	if erec == nil {
		panic(fmt.Errorf("relay: connect %s from %s: %w", sel.Name(), emitter, ErrDestroyedNode))
	}
	if rrec == nil {
		panic(fmt.Errorf("relay: connect %s to %s: %w", sel.Name(), receiver, ErrDestroyedNode))
	}

	key := SignalKey{Emitter: emitter, Selector: sel}
	if rs.cfg.unique && erec.table.contains(key, receiver, h) {
		return
	}
	erec.table.append(key, &slotEntry{
		receiver: receiver,
		handler:  h,
		call:     call,
	})
	rrec.reverse.Add(emitter)

	rs.debugf("relay: connect %s.%s -> %s.%s", rs.label(emitter), sel.Name(), rs.label(receiver), h.slotName())
}
