package relay

// Object is implemented by every type that embeds a Node.
type Object interface {
	relayNode() *Node
}

// Node gives its embedding struct an identity in a Registry. Create it with
// Registry.NewNode and call Destroy when the owner goes away.
type Node struct {
	rs *Registry
	id ID
}

func (n *Node) relayNode() *Node {
	return n
}

func (n *Node) ID() ID {
	return n.id
}

func (n *Node) Registry() *Registry {
	return n.rs
}

func (n *Node) Name() string {
	if n.rs == nil {
		return ""
	}
	return n.rs.Name(n.id)
}

// Alive reports whether Destroy has not run yet.
func (n *Node) Alive() bool {
	return n.rs != nil && n.rs.Alive(n.id)
}

// Destroy disconnects the node from everything it emits to or receives from
// and invalidates its ID. Only the first call has an effect.
func (n *Node) Destroy() {
	if n.rs == nil {
		return
	}
	n.rs.destroy(n.id)
}

func nodeOf(o Object) *Node {
	n := o.relayNode()
	if n.rs == nil {
		panic(ErrUnboundNode)
	}
	return n
}

// pair resolves emitter and receiver and checks they share a registry.
func pair(emitter, receiver Object) (*Registry, ID, ID) {
	en, rn := nodeOf(emitter), nodeOf(receiver)
	if en.rs != rn.rs {
		panic(ErrForeignNode)
	}
	return en.rs, en.id, rn.id
}
