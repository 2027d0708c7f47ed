package relay

func (rs *Registry) destroy(id ID) {
	rec := rs.record(id)
	if rec == nil || rec.destroying {
		return
	}
	rec.destroying = true
	rs.debugf("relay: destroy %s", rs.label(id))

	// The sweeps run even if a Destroyed slot panics; the panic still propagates.
	defer rs.sweep(id)
	deliver(rs, id, Destroyed, id)
}

func (rs *Registry) sweep(id ID) {
	// As emitter.
	rs.disconnectAll(id)

	// As receiver. Slots run by Destroyed may have grown the arena.
	rec := &rs.nodes[id.index]
	for _, emitter := range rec.reverse.ToSlice() {
		if t := rs.table(emitter); t != nil {
			t.removeReceiver(id)
		}
	}
	rec.reverse.Clear()

	rs.release(id)
}
