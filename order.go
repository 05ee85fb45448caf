package flexbox

import (
	"sort"

	"github.com/npillmayer/flexbox/maybe"
)

// ordering maps presentation indices to declared indices. Children with a
// higher order attribute are presented first; ties keep insertion order.
//
// The permutation is built lazily and dropped whenever the child collection
// changes.
type ordering struct {
	perm  []int // presentation index → declared index
	valid bool
}

func (o *ordering) invalidate() {
	o.valid = false
}

func (o *ordering) build(nodes []Node) {
	if cap(o.perm) < len(nodes) {
		o.perm = make([]int, len(nodes), max(len(nodes), 2*cap(o.perm)))
	}
	o.perm = o.perm[:len(nodes)]
	for i := range o.perm {
		o.perm[i] = i
	}
	sort.SliceStable(o.perm, func(a, b int) bool {
		return nodes[o.perm[a]].Order() > nodes[o.perm[b]].Order()
	})
	o.valid = true
}

// declared returns the declared index for presentation index i.
func (o *ordering) declared(nodes []Node, i int) (int, bool) {
	if !o.valid {
		o.build(nodes)
	}
	if i < 0 || i >= len(o.perm) {
		return -1, false
	}
	return o.perm[i], true
}

// childAt returns the child at presentation index i, if any.
func (e *Engine) childAt(i int) (Node, bool) {
	d, ok := e.order.declared(e.nodes, i)
	if !ok || e.nodes[d] == nil {
		return nil, false
	}
	return e.nodes[d], true
}

// ReorderedNodeAt returns the child at presentation index i, i.e. after
// sorting children by their order attribute. Out of range indices yield
// Nothing.
func (e *Engine) ReorderedNodeAt(i int) maybe.Maybe[Node] {
	if node, ok := e.childAt(i); ok {
		return maybe.Just(node)
	}
	return maybe.Nothing[Node]()
}
