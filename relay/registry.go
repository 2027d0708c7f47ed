package relay

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// ID identifies a node. It is a handle into the registry arena, the
// generation makes IDs of destroyed nodes compare unequal to whatever node
// reuses the slot later. The zero ID never refers to a node.
type ID struct {
	index uint32
	gen   uint32
}

func (id ID) IsZero() bool {
	return id.gen == 0
}

func (id ID) String() string {
	if id.IsZero() {
		return "node(nil)"
	}
	return fmt.Sprintf("node(%d.%d)", id.index, id.gen)
}

type nodeRecord struct {
	gen        uint32
	alive      bool
	destroying bool
	name       string
	table      *connectionTable
	reverse    mapset.Set[ID]
}

// Registry owns every node and all connections between them.
type Registry struct {
	nodes []nodeRecord
	free  []uint32
	live  int
	named map[uint64][]*DynamicSignal
	cfg   config
}

func New(opts ...Option) *Registry {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Registry{
		nodes: make([]nodeRecord, 0, cfg.capacity),
		named: map[uint64][]*DynamicSignal{},
		cfg:   cfg,
	}
}

// NewNode allocates a node. The name is only used for tracing and may be empty.
func (rs *Registry) NewNode(name string) Node {
	var idx uint32
	if n := len(rs.free); n > 0 {
		idx = rs.free[n-1]
		rs.free = rs.free[:n-1]
	} else {
		rs.nodes = append(rs.nodes, nodeRecord{})
		idx = uint32(len(rs.nodes) - 1)
	}

	rec := &rs.nodes[idx]
	rec.gen++
	rec.alive = true
	rec.destroying = false
	rec.name = name
	rec.table = newConnectionTable()
	rec.reverse = mapset.NewThreadUnsafeSet[ID]()
	rs.live++

	id := ID{index: idx, gen: rec.gen}
	rs.debugf("relay: new %s %q", id, name)
	return Node{rs: rs, id: id}
}

// record returns the live record for id or nil. The pointer is only valid
// until the next NewNode call.
func (rs *Registry) record(id ID) *nodeRecord {
	if id.IsZero() || int(id.index) >= len(rs.nodes) {
		return nil
	}
	rec := &rs.nodes[id.index]
	if !rec.alive || rec.gen != id.gen {
		return nil
	}
	return rec
}

func (rs *Registry) table(id ID) *connectionTable {
	if rec := rs.record(id); rec != nil {
		return rec.table
	}
	return nil
}

func (rs *Registry) release(id ID) {
	rec := &rs.nodes[id.index]
	rec.alive = false
	rec.destroying = false
	rec.name = ""
	rec.table = nil
	rec.reverse = nil
	rs.free = append(rs.free, id.index)
	rs.live--
}

// Alive reports whether id names a node that has not been destroyed.
func (rs *Registry) Alive(id ID) bool {
	return rs.record(id) != nil
}

// Name returns the name the node was created with.
func (rs *Registry) Name(id ID) string {
	if rec := rs.record(id); rec != nil {
		return rec.name
	}
	return ""
}

func (rs *Registry) label(id ID) string {
	if name := rs.Name(id); name != "" {
		return fmt.Sprintf("%s %q", id, name)
	}
	return id.String()
}

func (rs *Registry) debugf(format string, args ...any) {
	if rs.cfg.debugf != nil {
		rs.cfg.debugf(format, args...)
	}
}

// Stats is a snapshot of the registry size.
type Stats struct {
	Nodes       int
	Signals     int
	Connections int
	// ReverseLinks counts (receiver, emitter) pairs over all reverse indexes.
	ReverseLinks int
}

func (rs *Registry) Stats() Stats {
	s := Stats{Nodes: rs.live}
	for i := range rs.nodes {
		rec := &rs.nodes[i]
		if !rec.alive {
			continue
		}
		s.Signals += len(rec.table.slots)
		for _, list := range rec.table.slots {
			s.Connections += len(list)
		}
		s.ReverseLinks += rec.reverse.Cardinality()
	}
	return s
}
