/*
Package tree implements a generic tree of nodes, each carrying a payload.

Box trees of the layout package are built on top of it: a box embeds a
Node and sets the payload to itself, so the generic tree operations
hand back the box.

	type Box struct {
		tree.Node[*Box]
		...
	}

Trees are not safe for concurrent modification.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"errors"
	"fmt"
)

// ErrCycle is returned when a node would become a descendant of itself.
var ErrCycle = errors.New("tree: node cannot be its own descendant")

// Node is the base type our tree is built of.
type Node[T comparable] struct {
	parent   *Node[T]   // parent node of this node
	children []*Node[T] // children in document order
	Payload  T          // nodes may carry a payload of arbitrary type
}

// NewNode creates a new tree node with a given payload.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends a child node, detaching it from a previous parent.
// It returns the parent node to allow for chaining.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	_ = node.InsertChildAt(len(node.children), ch)
	return node
}

// InsertChildAt inserts a child node at position i, shifting children at
// later positions. Positions beyond the end append the child.
func (node *Node[T]) InsertChildAt(i int, ch *Node[T]) error {
	if ch == nil {
		return nil
	}
	for p := node; p != nil; p = p.parent {
		if p == ch {
			return ErrCycle
		}
	}
	ch.Isolate()
	i = max(0, min(i, len(node.children)))
	node.children = append(node.children, nil)
	copy(node.children[i+1:], node.children[i:])
	node.children[i] = ch
	ch.parent = node
	return nil
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	return node.parent
}

// Isolate removes a node from its parent and returns it.
func (node *Node[T]) Isolate() *Node[T] {
	if node == nil || node.parent == nil {
		return node
	}
	p := node.parent
	if i := p.IndexOfChild(node); i >= 0 {
		p.children = append(p.children[:i], p.children[i+1:]...)
	}
	node.parent = nil
	return node
}

// ChildCount returns the number of children of a node.
func (node *Node[T]) ChildCount() int {
	if node == nil {
		return 0
	}
	return len(node.children)
}

// Child returns the n-th child of a node.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	if n < 0 || node.ChildCount() <= n {
		return nil, false
	}
	return node.children[n], true
}

// Children returns a copy of the slice of children.
func (node *Node[T]) Children() []*Node[T] {
	if node.ChildCount() == 0 {
		return nil
	}
	return append([]*Node[T](nil), node.children...)
}

// IndexOfChild returns the position of ch among the children of node,
// or -1.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	for i, child := range node.children {
		if ch == child {
			return i
		}
	}
	return -1
}

// Depth returns the number of ancestors of node.
func (node *Node[T]) Depth() int {
	d := 0
	for p := node.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// --- Walking ---------------------------------------------------------------

// Action is called for nodes visited during a walk. Returning an error
// stops the walk.
type Action[T comparable] func(node *Node[T]) error

// TopDown calls action for node and all of its descendants, parents
// before their children.
func TopDown[T comparable](node *Node[T], action Action[T]) error {
	if node == nil {
		return nil
	}
	if err := action(node); err != nil {
		return err
	}
	for _, ch := range node.children {
		if err := TopDown(ch, action); err != nil {
			return err
		}
	}
	return nil
}

// BottomUp calls action for node and all of its descendants, children
// before their parents.
func BottomUp[T comparable](node *Node[T], action Action[T]) error {
	if node == nil {
		return nil
	}
	for _, ch := range node.children {
		if err := BottomUp(ch, action); err != nil {
			return err
		}
	}
	return action(node)
}

// Collect returns the payloads of all nodes of the tree rooted at node
// for which pred holds, in document order.
func Collect[T comparable](node *Node[T], pred func(T) bool) []T {
	var r []T
	_ = TopDown(node, func(n *Node[T]) error {
		if pred(n.Payload) {
			r = append(r, n.Payload)
		}
		return nil
	})
	return r
}
