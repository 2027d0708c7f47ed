package relay

import mapset "github.com/deckarep/golang-set/v2"

type slotEntry struct {
	receiver ID
	handler  handler
	call     any
	// removed is set when the entry leaves its table so an emission that
	// snapshotted it skips it.
	removed bool
}

type slotList []*slotEntry

// connectionTable holds the connections made to one node's signals.
type connectionTable struct {
	slots map[SignalKey]slotList
	// refs counts the entries per receiver over all keys.
	refs map[ID]int
}

func newConnectionTable() *connectionTable {
	return &connectionTable{
		slots: map[SignalKey]slotList{},
		refs:  map[ID]int{},
	}
}

func (t *connectionTable) append(key SignalKey, e *slotEntry) {
	t.slots[key] = append(t.slots[key], e)
	t.refs[e.receiver]++
}

func (t *connectionTable) contains(key SignalKey, receiver ID, h handler) bool {
	for _, e := range t.slots[key] {
		if e.receiver == receiver && e.handler == h {
			return true
		}
	}
	return false
}

// has reports whether any key holds an entry for receiver.
func (t *connectionTable) has(receiver ID) bool {
	return t.refs[receiver] > 0
}

func (t *connectionTable) drop(e *slotEntry) {
	e.removed = true
	if n := t.refs[e.receiver] - 1; n > 0 {
		t.refs[e.receiver] = n
	} else {
		delete(t.refs, e.receiver)
	}
}

// removeIf removes the entries of key matching match, keeping the order of
// the rest and pruning the key when nothing is left. Receivers of removed
// entries are added to touched.
func (t *connectionTable) removeIf(key SignalKey, match func(*slotEntry) bool, touched mapset.Set[ID]) int {
	list, ok := t.slots[key]
	if !ok {
		return 0
	}

	kept := list[:0]
	for _, e := range list {
		if !match(e) {
			kept = append(kept, e)
			continue
		}
		t.drop(e)
		if touched != nil {
			touched.Add(e.receiver)
		}
	}
	removed := len(list) - len(kept)
	for i := len(kept); i < len(list); i++ {
		list[i] = nil
	}

	if len(kept) == 0 {
		delete(t.slots, key)
	} else {
		t.slots[key] = kept
	}
	return removed
}

// removeReceiver removes every entry naming receiver under any key.
func (t *connectionTable) removeReceiver(receiver ID) int {
	if !t.has(receiver) {
		return 0
	}
	removed := 0
	for key := range t.slots {
		removed += t.removeIf(key, func(e *slotEntry) bool {
			return e.receiver == receiver
		}, nil)
	}
	return removed
}

// clear empties the table and returns the receivers it referenced.
func (t *connectionTable) clear() mapset.Set[ID] {
	receivers := mapset.NewThreadUnsafeSet[ID]()
	for _, list := range t.slots {
		for _, e := range list {
			e.removed = true
			receivers.Add(e.receiver)
		}
	}
	t.slots = map[SignalKey]slotList{}
	t.refs = map[ID]int{}
	return receivers
}

func (t *connectionTable) receivers(key *SignalKey) mapset.Set[ID] {
	set := mapset.NewThreadUnsafeSet[ID]()
	if key != nil {
		for _, e := range t.slots[*key] {
			set.Add(e.receiver)
		}
		return set
	}
	for r := range t.refs {
		set.Add(r)
	}
	return set
}
