package relay

import (
	"errors"
	"fmt"
)

// Check verifies the bookkeeping of every live node: each entry in a
// connection table is mirrored by the receiver's reverse index and the
// other way round, no table or index refers to a destroyed node, and no
// signal is left with an empty slot list. It returns nil when the registry
// is consistent.
func (rs *Registry) Check() error {
	var errs []error
	for i := range rs.nodes {
		rec := &rs.nodes[i]
		if !rec.alive {
			continue
		}
		id := ID{index: uint32(i), gen: rec.gen}
		errs = append(errs, rs.checkTable(id, rec.table)...)

		for _, emitter := range rec.reverse.ToSlice() {
			t := rs.table(emitter)
			switch {
			case t == nil:
				errs = append(errs, fmt.Errorf("%s lists destroyed emitter %s", id, emitter))
			case !t.has(id):
				errs = append(errs, fmt.Errorf("%s lists %s but has no slot on it", id, emitter))
			}
		}
	}
	return errors.Join(errs...)
}

func (rs *Registry) checkTable(id ID, t *connectionTable) []error {
	var errs []error
	counts := map[ID]int{}
	for key, list := range t.slots {
		if key.Emitter != id {
			errs = append(errs, fmt.Errorf("%s holds key %s of another emitter", id, key))
		}
		if len(list) == 0 {
			errs = append(errs, fmt.Errorf("%s holds empty slot list for %s", id, key))
		}
		for _, e := range list {
			counts[e.receiver]++
			if e.removed {
				errs = append(errs, fmt.Errorf("%s holds removed slot %s", key, e.handler.slotName()))
			}
			rec := rs.record(e.receiver)
			switch {
			case rec == nil:
				errs = append(errs, fmt.Errorf("%s connected to destroyed receiver %s", key, e.receiver))
			case !rec.reverse.Contains(id):
				errs = append(errs, fmt.Errorf("%s connected to %s which does not list it", key, e.receiver))
			}
		}
	}
	for receiver, n := range t.refs {
		if counts[receiver] != n {
			errs = append(errs, fmt.Errorf("%s counts %d slots for %s, found %d", id, n, receiver, counts[receiver]))
		}
	}
	for receiver, n := range counts {
		if _, ok := t.refs[receiver]; !ok {
			errs = append(errs, fmt.Errorf("%s does not count %d slots for %s", id, n, receiver))
		}
	}
	return errs
}
