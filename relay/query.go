package relay

import mapset "github.com/deckarep/golang-set/v2"

// IsConnected reports whether anything is connected to sig of emitter.
func IsConnected(emitter Object, sig Selector) bool {
	n := nodeOf(emitter)
	t := n.rs.table(n.id)
	return t != nil && len(t.slots[SignalKey{Emitter: n.id, Selector: sig}]) > 0
}

// IsConnectedTo reports whether receiver has a slot on any signal of emitter.
func IsConnectedTo(emitter, receiver Object) bool {
	rs, eid, rid := pair(emitter, receiver)
	t := rs.table(eid)
	return t != nil && t.has(rid)
}

// Receivers returns the nodes with at least one slot on any signal of emitter.
func Receivers(emitter Object) mapset.Set[ID] {
	n := nodeOf(emitter)
	t := n.rs.table(n.id)
	if t == nil {
		return mapset.NewThreadUnsafeSet[ID]()
	}
	return t.receivers(nil)
}

// SignalReceivers returns the nodes with at least one slot on sig of emitter.
func SignalReceivers(emitter Object, sig Selector) mapset.Set[ID] {
	n := nodeOf(emitter)
	t := n.rs.table(n.id)
	if t == nil {
		return mapset.NewThreadUnsafeSet[ID]()
	}
	key := SignalKey{Emitter: n.id, Selector: sig}
	return t.receivers(&key)
}

// Emitters returns the nodes receiver is registered with.
func Emitters(receiver Object) mapset.Set[ID] {
	n := nodeOf(receiver)
	rec := n.rs.record(n.id)
	if rec == nil {
		return mapset.NewThreadUnsafeSet[ID]()
	}
	return rec.reverse.Clone()
}

// Signals returns the keys of emitter that have at least one slot.
func Signals(emitter Object) []SignalKey {
	n := nodeOf(emitter)
	t := n.rs.table(n.id)
	if t == nil {
		return nil
	}
	keys := make([]SignalKey, 0, len(t.slots))
	for key := range t.slots {
		keys = append(keys, key)
	}
	return keys
}
