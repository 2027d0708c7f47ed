// Package relay is a synchronous, in-process signal/slot registry.
//
// Any struct that embeds a Node can emit signals and own slots. A slot is
// connected to one (emitter, signal) pair, emitting that signal calls every
// connected slot in connection order with the emitted arguments before Emit
// returns.
//
//	type Button struct {
//		relay.Node
//	}
//
//	type Label struct {
//		relay.Node
//		text string
//	}
//
//	func (l *Label) SetText(s string) { l.text = s }
//
//	var (
//		Clicked = relay.NewSignal[string]("clicked")
//		SetText = relay.NewSlot("setText", (*Label).SetText)
//	)
//
//	rs := relay.New()
//	b := &Button{Node: rs.NewNode("button")}
//	l := &Label{Node: rs.NewNode("label")}
//	relay.Connect(b, Clicked, l, SetText)
//	relay.Emit(b, Clicked, "ok")
//
// Every node keeps the connections made to its own signals and the set of
// emitters it is registered with. Destroying a node walks both, so no other
// node is left holding its ID and the cost of destruction only depends on
// the connections that touch it.
//
// A Registry is not safe for concurrent use.
package relay
