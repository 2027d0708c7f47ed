package relay

import mapset "github.com/deckarep/golang-set/v2"

// Disconnect removes every connection of slot on receiver to sig of
// emitter. Missing connections are ignored.
func Disconnect[R Object, A any](emitter Object, sig *Signal[A], receiver R, slot *Slot[R, A]) {
	rs, eid, rid := pair(emitter, receiver)
	rs.disconnectSlot(eid, sig, rid, slot)
}

// DisconnectReceiver removes all slots of receiver connected to sig of emitter.
func DisconnectReceiver(emitter Object, sig Selector, receiver Object) {
	rs, eid, rid := pair(emitter, receiver)
	key := SignalKey{Emitter: eid, Selector: sig}
	if t := rs.table(eid); t != nil {
		t.removeIf(key, func(e *slotEntry) bool {
			return e.receiver == rid
		}, nil)
	}
	rs.settle(eid, rid)
	rs.debugf("relay: disconnect %s.%s -> %s", rs.label(eid), sig.Name(), rs.label(rid))
}

// DisconnectSignal removes every slot connected to sig of emitter.
func DisconnectSignal(emitter Object, sig Selector) {
	n := nodeOf(emitter)
	n.rs.disconnectSignal(n.id, sig)
}

// DisconnectAll removes every connection made to any signal of emitter.
func DisconnectAll(emitter Object) {
	n := nodeOf(emitter)
	n.rs.disconnectAll(n.id)
}

func (rs *Registry) disconnectSlot(emitter ID, sel Selector, receiver ID, h handler) {
	key := SignalKey{Emitter: emitter, Selector: sel}
	if t := rs.table(emitter); t != nil {
		t.removeIf(key, func(e *slotEntry) bool {
			return e.receiver == receiver && e.handler == h
		}, nil)
	}
	rs.settle(emitter, receiver)
	rs.debugf("relay: disconnect %s.%s -> %s.%s", rs.label(emitter), sel.Name(), rs.label(receiver), h.slotName())
}

func (rs *Registry) disconnectSignal(emitter ID, sel Selector) {
	t := rs.table(emitter)
	if t == nil {
		return
	}
	touched := mapset.NewThreadUnsafeSet[ID]()
	t.removeIf(SignalKey{Emitter: emitter, Selector: sel}, func(*slotEntry) bool {
		return true
	}, touched)
	for _, receiver := range touched.ToSlice() {
		rs.settle(emitter, receiver)
	}
	rs.debugf("relay: disconnect %s.%s from %d receivers", rs.label(emitter), sel.Name(), touched.Cardinality())
}

func (rs *Registry) disconnectAll(emitter ID) {
	t := rs.table(emitter)
	if t == nil {
		return
	}
	receivers := t.clear()
	for _, receiver := range receivers.ToSlice() {
		if rec := rs.record(receiver); rec != nil {
			rec.reverse.Remove(emitter)
		}
	}
	rs.debugf("relay: disconnect all of %s from %d receivers", rs.label(emitter), receivers.Cardinality())
}

// settle drops emitter from the reverse index of receiver once the
// emitter's table holds no entry for it anymore.
func (rs *Registry) settle(emitter, receiver ID) {
	t := rs.table(emitter)
	if t != nil && t.has(receiver) {
		return
	}
	if rec := rs.record(receiver); rec != nil {
		rec.reverse.Remove(emitter)
	}
}
